package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
	"gestock/internal/domain/movements"
)

// MovementLineRequest is one (article, quantity) item of a movement.
type MovementLineRequest struct {
	ArticleID string `json:"article_id" binding:"required,uuid"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
}

// BatchMovementRequest carries the lines of a batch movement.
type BatchMovementRequest struct {
	Lines []MovementLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToLine converts a request item to a domain line.
func (r MovementLineRequest) ToLine() (movements.Line, error) {
	artID, err := id.Parse(r.ArticleID)
	if err != nil {
		return movements.Line{}, apperror.NewValidation("invalid article_id").
			WithDetail("article_id", r.ArticleID)
	}
	return movements.Line{ArticleID: artID, Quantity: r.Quantity}, nil
}

// ToLines converts all request items to domain lines.
func (r BatchMovementRequest) ToLines() ([]movements.Line, error) {
	lines := make([]movements.Line, 0, len(r.Lines))
	for _, item := range r.Lines {
		line, err := item.ToLine()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// EntryResponse contains one inbound movement.
type EntryResponse struct {
	ID        string    `json:"id"`
	Quantity  int64     `json:"quantity"`
	ArticleID string    `json:"article_id"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromEntry creates EntryResponse from the domain model.
func FromEntry(e *movements.StockEntry) EntryResponse {
	return EntryResponse{
		ID:        e.ID.String(),
		Quantity:  e.Quantity,
		ArticleID: e.ArticleID.String(),
		CreatedAt: e.CreatedAt,
	}
}

// FromEntries maps a list of inbound movements.
func FromEntries(entries []*movements.StockEntry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromEntry(e))
	}
	return out
}

// ExitResponse contains one outbound movement.
type ExitResponse struct {
	ID        string          `json:"id"`
	Quantity  int64           `json:"quantity"`
	Solde     decimal.Decimal `json:"solde"`
	ArticleID string          `json:"article_id"`
	CreatedAt time.Time       `json:"createdAt"`
}

// FromExit creates ExitResponse from the domain model.
func FromExit(e *movements.StockExit) ExitResponse {
	return ExitResponse{
		ID:        e.ID.String(),
		Quantity:  e.Quantity,
		Solde:     e.Solde,
		ArticleID: e.ArticleID.String(),
		CreatedAt: e.CreatedAt,
	}
}

// ExitLineErrorResponse describes one rejected line of an outbound batch.
type ExitLineErrorResponse struct {
	ArticleID         string `json:"article_id"`
	Message           string `json:"message"`
	AvailableQuantity int64  `json:"available_quantity"`
}

// BatchEntryResponse is the body for a successful inbound batch.
type BatchEntryResponse struct {
	Success bool            `json:"success"`
	Entries []EntryResponse `json:"entries"`
}

// BatchExitResponse is the body for an outbound batch, successful or
// rolled back. Persisted tells the caller whether anything was written;
// on rollback, Exits and SoldeTotal describe the would-have-been
// outcome.
type BatchExitResponse struct {
	Success    bool                    `json:"success"`
	Message    string                  `json:"message,omitempty"`
	Exits      []ExitResponse          `json:"exits"`
	Errors     []ExitLineErrorResponse `json:"errors,omitempty"`
	SoldeTotal decimal.Decimal         `json:"soldeTotal"`
	Persisted  bool                    `json:"persisted"`
}

// FromBatchExitResult creates BatchExitResponse from the domain result.
func FromBatchExitResult(r *movements.BatchExitResult) BatchExitResponse {
	exits := make([]ExitResponse, 0, len(r.Exits))
	for _, e := range r.Exits {
		exits = append(exits, FromExit(e))
	}

	errs := make([]ExitLineErrorResponse, 0, len(r.Errors))
	for _, le := range r.Errors {
		errs = append(errs, ExitLineErrorResponse{
			ArticleID:         le.ArticleID.String(),
			Message:           le.Message,
			AvailableQuantity: le.AvailableQuantity,
		})
	}

	resp := BatchExitResponse{
		Success:    !r.RolledBack,
		Exits:      exits,
		Errors:     errs,
		SoldeTotal: r.SoldeTotal,
		Persisted:  !r.RolledBack,
	}
	if r.RolledBack {
		resp.Message = "batch rejected: nothing was persisted"
	}
	return resp
}
