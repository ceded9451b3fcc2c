package client

import (
	"context"
	"fmt"

	"github.com/viant/edulearn/schema"
)

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*schema.User, error) {
	var user schema.User
	if err := c.get(ctx, "users/me/", &user); err != nil {
		return nil, fmt.Errorf("client.Me: %w", err)
	}
	return &user, nil
}

// UpdateMe applies the non-nil fields of update to the profile.
func (c *Client) UpdateMe(ctx context.Context, update *schema.ProfileUpdate) (*schema.User, error) {
	var user schema.User
	if err := c.patch(ctx, "users/me/", update, &user); err != nil {
		return nil, fmt.Errorf("client.UpdateMe: %w", err)
	}
	return &user, nil
}
