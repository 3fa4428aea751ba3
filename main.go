package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"footworks-server/config"
	"footworks-server/di"
	"footworks-server/util"
)

// seedFromResources loads the fixture data into the store so a fresh
// deployment has schedules, sources, and the curated catalog on day one.
func seedFromResources(container *di.Container) {
	schedules, err := util.ReadStaffSchedulesFromJSON(
		config.GetResourcePath(config.STAFF_SCHEDULES_RESOURCE))
	if err != nil {
		log.Printf("[MAIN] Failed to read staff schedules: %v", err)
	}
	for _, s := range schedules {
		if err := container.RedisStaffDao.UpsertStaffSchedule(s); err != nil {
			log.Printf("[MAIN] Failed to seed staff schedule %d: %v", s.ID, err)
		}
	}

	videos, err := util.ReadVideosFromJSON(
		config.GetResourcePath(config.VIDEOS_RESOURCE))
	if err != nil {
		log.Printf("[MAIN] Failed to read videos: %v", err)
	}
	for _, v := range videos {
		if err := container.RedisMediaDao.UpsertVideo(v); err != nil {
			log.Printf("[MAIN] Failed to seed video %s: %v", v.ID, err)
		}
	}

	sources, err := util.ReadYoutubeSourcesFromJSON(
		config.GetResourcePath(config.YOUTUBE_SOURCES_RESOURCE))
	if err != nil {
		log.Printf("[MAIN] Failed to read youtube sources: %v", err)
	}
	for _, s := range sources {
		if err := container.RedisMediaDao.UpsertYoutubeSource(s); err != nil {
			log.Printf("[MAIN] Failed to seed youtube source %s: %v", s.ID, err)
		}
	}

	log.Printf("[MAIN] Seeded %d schedules, %d videos, %d sources",
		len(schedules), len(videos), len(sources))
}

// plotFirstSchedule renders the weekly availability chart for the first
// stored schedule. Handy when eyeballing seeded data.
func plotFirstSchedule(container *di.Container) {
	schedules, err := container.RedisStaffDao.ListStaffSchedules()
	if err != nil || len(schedules) == 0 {
		log.Printf("[MAIN] Nothing to plot: %v", err)
		return
	}
	util.PlotWeeklyAvailability(schedules[0])
}

func main() {
	config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}
	container := di.NewContainer(env)

	seedFromResources(container)
	// plotFirstSchedule(container)

	fmt.Println("refreshing!")
	if err := container.MediaRefresherService.RefreshMediaData(); err != nil {
		log.Printf("[MAIN] Initial media refresh failed: %v", err)
	}
	fmt.Println("starting periodic job!")
	container.MediaRefresherService.StartPeriodicJob(config.MEDIA_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.FootworksHttpServer.Start()
	fmt.Println("server exited!")
}
