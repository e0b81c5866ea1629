package handler

import "lumiere-photography/internal/service"

type Handlers struct {
	Auth        *AuthHandler
	Media       *MediaHandler
	TextContent *TextContentHandler
	Background  *BackgroundHandler
	Quotation   *QuotationHandler
	Review      *ReviewHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(services.Auth),
		Media:       NewMediaHandler(services.Media),
		TextContent: NewTextContentHandler(services.TextContent),
		Background:  NewBackgroundHandler(services.Background),
		Quotation:   NewQuotationHandler(services.Quotation),
		Review:      NewReviewHandler(services.Review),
	}
}
