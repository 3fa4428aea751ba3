package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"footworks-server/availability"
	"footworks-server/models/staff"
)

var plotWeekdays = []string{"Mon", "Tue", "Wed", "Thr", "Fri", "Sat", "Sun"}

// PlotWeeklyAvailability generates an HTML file rendering the number of open
// hourly slots per weekday for a staff schedule.
func PlotWeeklyAvailability(schedule staff.StaffSchedule) {
	// Count open slots for each weekday of the schedule.
	bars := make([]opts.BarData, 0, len(plotWeekdays))
	for _, day := range plotWeekdays {
		slots := availability.GenerateSlots(schedule.Availability[day])
		bars = append(bars, opts.BarData{Value: len(slots)})
	}

	// Create a new bar chart.
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Availability",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Open slots per weekday - %s", schedule.StaffName),
		}),
	)
	bar.SetXAxis(plotWeekdays)
	bar.AddSeries("Open slots", bars)

	// Create an HTML file to render the chart.
	f, err := os.Create("weekly_availability.html")
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Weekly availability chart generated: weekly_availability.html")
}
