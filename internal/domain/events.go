package domain

// TopicPayloadStored is the subject payload creation events are published on.
const TopicPayloadStored = "payload.stored"

// PayloadStored is emitted once per identifier, after the first successful
// write. Deduplicated submissions do not emit it again.
type PayloadStored struct {
	Identifier string `json:"identifier"`
	Output     string `json:"output"`
}
