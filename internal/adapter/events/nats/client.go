// Package nats publishes domain events and relays the transactional outbox.
package nats

import (
	"context"
	"encoding/json"

	natspkg "github.com/nats-io/nats.go"

	"github.com/VVVARDAN/Caching-Service/internal/domain"
	"github.com/VVVARDAN/Caching-Service/internal/port"
)

type Client struct {
	nc *natspkg.Conn
}

func NewClient(url string) (*Client, error) {
	nc, err := natspkg.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Client{nc: nc}, nil
}

func (c *Client) Close() {
	c.nc.Close()
}

func (c *Client) IsConnected() bool {
	return c.nc != nil && c.nc.Status() == natspkg.CONNECTED
}

func (c *Client) Publish(subject string, data []byte) error {
	return c.nc.Publish(subject, data)
}

// PublishPayloadStored sends the event directly, bypassing the outbox. Used
// by backends without a transactional store.
func (c *Client) PublishPayloadStored(ctx context.Context, event domain.PayloadStored) error {
	_ = ctx
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return c.nc.Publish(domain.TopicPayloadStored, data)
}

var _ port.Publisher = (*Client)(nil)
