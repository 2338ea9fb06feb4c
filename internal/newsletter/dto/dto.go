package dto

import "github.com/fekuna/omnipos-commerce/internal/model"

type SubscriberFilters struct {
	Status   model.SubscriptionStatus
	Page     int
	PageSize int
}

type SendNewsletterInput struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body" validate:"required,max=20000"`
}

type SendResult struct {
	Recipients int `json:"recipients"`
	Batches    int `json:"batches"`
}
