package port

import (
	"context"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Payloads is the inbound port of the payload cache.
type Payloads interface {
	// SubmitPayload transforms the two lists, stores the result under its
	// content-derived identifier and returns that identifier. Resubmitting
	// the same pair returns the same identifier without a second write.
	SubmitPayload(ctx context.Context, req SubmitPayloadRequest) (SubmitPayloadResponse, error)
	// GetPayload returns the stored output for an identifier.
	GetPayload(ctx context.Context, req GetPayloadRequest) (GetPayloadResponse, error)
}

// Request/Response DTOs
type SubmitPayloadRequest struct {
	List1 []string `json:"list_1"`
	List2 []string `json:"list_2"`
}

func (d *SubmitPayloadRequest) Validate() error {
	// Empty and unequal lists are legal inputs. Absent fields decode to nil
	// slices and are treated as empty lists.
	return nil
}

type SubmitPayloadResponse struct {
	Identifier string `json:"identifier"`
}

func (d *SubmitPayloadResponse) Validate() error {
	return nil
}

type GetPayloadRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

func (d *GetPayloadRequest) Validate() error {
	return validate.Struct(d)
}

type GetPayloadResponse struct {
	Output string `json:"output"`
}

func (d *GetPayloadResponse) Validate() error {
	return nil
}
