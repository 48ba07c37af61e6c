package domain

// Payload is a stored transformation result addressed by its content-derived
// identifier. Rows are immutable: once written, the output never changes.
type Payload struct {
	Identifier string `json:"identifier"`
	Output     string `json:"output"`
}
