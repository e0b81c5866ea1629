package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Media       MediaRepository
	Background  BackgroundRepository
	TextContent TextContentRepository
	Quotation   QuotationRepository
	Review      ReviewRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Media:       NewMediaRepository(db),
		Background:  NewBackgroundRepository(db),
		TextContent: NewTextContentRepository(db),
		Quotation:   NewQuotationRepository(db),
		Review:      NewReviewRepository(db),
	}
}
