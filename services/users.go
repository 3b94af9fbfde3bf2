package services

import (
	"fmt"
	"net/url"
	"strconv"

	"betadmin/client"
	"betadmin/models"
)

// UserService maps user administration onto the backend user endpoints.
type UserService struct {
	client *client.Client
}

func NewUserService(c *client.Client) *UserService {
	return &UserService{client: c}
}

// ListUsersParams are the supported user list filters. Zero values are
// omitted from the query string.
type ListUsersParams struct {
	Page      int
	PageSize  int
	Search    string
	IsBlocked *bool
}

// List fetches one page of users.
func (s *UserService) List(params ListUsersParams) (*models.UserListResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("page_size", strconv.Itoa(params.PageSize))
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.IsBlocked != nil {
		query.Set("is_blocked", strconv.FormatBool(*params.IsBlocked))
	}

	var resp models.UserListResponse
	if err := s.client.Get("/api/admin/users", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get fetches one user with lifetime totals.
func (s *UserService) Get(userID uint) (*models.UserDetail, error) {
	var resp models.UserDetail
	if err := s.client.Get(fmt.Sprintf("/api/admin/users/%d", userID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Block blocks a user from placing bets.
func (s *UserService) Block(userID uint, reason string) error {
	body := map[string]string{"reason": reason}
	return s.client.Post(fmt.Sprintf("/api/admin/users/%d/block", userID), body, nil)
}

// Unblock lifts a block.
func (s *UserService) Unblock(userID uint) error {
	return s.client.Post(fmt.Sprintf("/api/admin/users/%d/unblock", userID), nil, nil)
}
