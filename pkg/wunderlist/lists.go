package wunderlist

import "context"

// GetLists returns every list the user can access.
func (c *Client) GetLists(ctx context.Context) (*Envelope, error) {
	return c.Call(ctx, OpGetLists, nil)
}

func (c *Client) GetList(ctx context.Context, id string) (*Envelope, error) {
	return c.Call(ctx, OpGetList, Args{"id": id})
}

func (c *Client) CreateList(ctx context.Context, title string) (*Envelope, error) {
	return c.Call(ctx, OpCreateList, Args{"title": title})
}

func (c *Client) UpdateList(ctx context.Context, id string, revision int, title string) (*Envelope, error) {
	return c.Call(ctx, OpUpdateList, Args{"id": id, "revision": revision, "title": title})
}

// StateList makes a list public or private.
func (c *Client) StateList(ctx context.Context, id string, revision int, public bool) (*Envelope, error) {
	return c.Call(ctx, OpStateList, Args{"id": id, "revision": revision, "public": public})
}

func (c *Client) DeleteList(ctx context.Context, id string, revision int) (*Envelope, error) {
	return c.Call(ctx, OpDeleteList, Args{"id": id, "revision": revision})
}

// ListUsers returns the users sharing lists with the current user.
func (c *Client) ListUsers(ctx context.Context) (*Envelope, error) {
	return c.Call(ctx, OpListUsers, nil)
}

func (c *Client) User(ctx context.Context) (*Envelope, error) {
	return c.Call(ctx, OpUser, nil)
}

// Avatar fetches a user's avatar image. The raw bytes are in Envelope.Raw.
func (c *Client) Avatar(ctx context.Context, userID string, size int, fallback bool) (*Envelope, error) {
	return c.Call(ctx, OpAvatar, Args{"user_id": userID, "size": size, "fallback": fallback})
}

func (c *Client) GetMemberships(ctx context.Context) (*Envelope, error) {
	return c.Call(ctx, OpGetMemberships, nil)
}

func (c *Client) AddMember(ctx context.Context, userID, listID int64, muted bool) (*Envelope, error) {
	return c.Call(ctx, OpAddMember, Args{"user_id": userID, "list_id": listID, "muted": muted})
}

// RemoveMember deletes the membership id. The revision travels in the body.
func (c *Client) RemoveMember(ctx context.Context, id string, revision int) (*Envelope, error) {
	return c.Call(ctx, OpRemoveMember, Args{"id": id, "revision": revision})
}
