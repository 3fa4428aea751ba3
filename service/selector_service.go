package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"footworks-server/config"
	"footworks-server/dao/redis"
	"footworks-server/models/booking"
	"footworks-server/models/selector"
	"footworks-server/util"
)

// SelectorAnswers are the raw quiz answers the category decision is made from.
type SelectorAnswers struct {
	Start           string `json:"start"`
	TrailExperience string `json:"trail_experience"`
	MixedGoal       string `json:"mixed_goal"`
	Gait            string `json:"gait"`
	Feel            string `json:"feel"`
	PricePoint      string `json:"price_point"`
	ShoeSize        string `json:"shoe_size"`
}

// SelectorSubmission is a full quiz submit: contact details plus answers.
type SelectorSubmission struct {
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Notes       string          `json:"notes"`
	Answers     SelectorAnswers `json:"answers"`
}

type SelectorService struct {
	bookingDao *redis.RedisBookingDAO
	categories []selector.Category
}

// NewSelectorService constructs a new SelectorService, loading the category
// catalog from the resources directory.
func NewSelectorService(bookingDao *redis.RedisBookingDAO) *SelectorService {
	categories, err := util.ReadCategoriesFromJSON(
		config.GetResourcePath(config.CATEGORIES_RESOURCE))
	if err != nil {
		log.Printf("[SelectorService] Could not load categories: %v", err)
		categories = []selector.Category{}
	}

	return &SelectorService{
		bookingDao: bookingDao,
		categories: categories,
	}
}

// GetCategories returns the shoe category catalog.
func (ss *SelectorService) GetCategories() []selector.Category {
	return ss.categories
}

// PickCategory resolves the quiz answers to a shoe category key.
func PickCategory(a SelectorAnswers) string {
	if a.Start == "walking" {
		return "walking"
	}
	if a.Start == "trail" {
		if a.TrailExperience == "mixed" {
			if a.MixedGoal == "fast" {
				return "speed"
			}
			return "trail"
		}
		return "trail"
	}
	if a.Gait == "support_yes" {
		return "stability"
	}
	if a.Feel == "snappy" {
		return "speed"
	}
	return "neutral"
}

// SubmitResponse upserts the customer, picks the category, and persists the
// flattened quiz response. Returns the matched category.
func (ss *SelectorService) SubmitResponse(sub SelectorSubmission) (*selector.Category, error) {
	if sub.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidRequest)
	}

	customer, err := ss.upsertCustomer(sub)
	if err != nil {
		return nil, err
	}

	categoryKey := PickCategory(sub.Answers)
	response := selector.SelectorResponse{
		ID:             uuid.NewString(),
		CustomerID:     customer.ID,
		RunningStyle:   sub.Answers.Start,
		ShoePreference: categoryKey,
		PricePoint:     sub.Answers.PricePoint,
		Gait:           sub.Answers.Gait,
		Notes:          sub.Notes,
		ShoeSize:       sub.Answers.ShoeSize,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := ss.bookingDao.SaveSelectorResponse(response); err != nil {
		return nil, err
	}
	log.Printf("[SelectorService] Saved selector response id=%s category=%s",
		response.ID, categoryKey)

	return ss.categoryForKey(categoryKey), nil
}

// categoryForKey looks up the catalog entry; an unknown key falls back to a
// bare category so the caller still gets a usable result.
func (ss *SelectorService) categoryForKey(key string) *selector.Category {
	for _, c := range ss.categories {
		if c.ID == key {
			return &c
		}
	}
	return &selector.Category{ID: key, Title: key}
}

func (ss *SelectorService) upsertCustomer(sub SelectorSubmission) (*booking.Customer, error) {
	existing, err := ss.bookingDao.GetCustomerByEmail(sub.Email)
	if err != nil {
		return nil, err
	}

	customer := booking.Customer{
		FirstName:   sub.FirstName,
		LastName:    sub.LastName,
		Email:       sub.Email,
		PhoneNumber: sub.PhoneNumber,
	}
	if existing != nil {
		customer.ID = existing.ID
	} else {
		customer.ID = uuid.NewString()
	}

	if err := ss.bookingDao.SaveCustomer(customer); err != nil {
		return nil, err
	}
	return &customer, nil
}
