package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
)

// AdminPayload is the JSON body for admin create/update. Password is
// only sent on create.
type AdminPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

func adminsPath(restauranteID string) string {
	return "/restaurantes/" + url.PathEscape(restauranteID) + "/admins"
}

func adminPath(restauranteID, adminID string) string {
	return adminsPath(restauranteID) + "/" + url.PathEscape(adminID)
}

// ListAdmins fetches the admins of one restaurante. The platform API
// returns this list in several shapes; the payload is normalized into a
// plain slice and unknown shapes yield an empty one.
func (c *Client) ListAdmins(ctx context.Context, restauranteID string) ([]domain.RestauranteAdmin, error) {
	var raw []byte
	if err := c.getRaw(ctx, adminsPath(restauranteID), &raw); err != nil {
		return nil, err
	}
	return NormalizeAdminList(raw), nil
}

func (c *Client) CreateAdmin(ctx context.Context, restauranteID string, payload AdminPayload) error {
	return c.sendJSON(ctx, http.MethodPost, adminsPath(restauranteID), payload)
}

func (c *Client) UpdateAdmin(ctx context.Context, restauranteID, adminID string, payload AdminPayload) error {
	return c.sendJSON(ctx, http.MethodPut, adminPath(restauranteID, adminID), payload)
}

func (c *Client) DeleteAdmin(ctx context.Context, restauranteID, adminID string) error {
	return c.doWithRetry(ctx, http.MethodDelete, adminPath(restauranteID, adminID), "", nil, nil)
}

// ChangeAdminPassword resets an admin's password. The password is
// write-only and never read back.
func (c *Client) ChangeAdminPassword(ctx context.Context, restauranteID, adminID, password string) error {
	body := struct {
		Password string `json:"password"`
	}{Password: password}
	return c.sendJSON(ctx, http.MethodPost, adminPath(restauranteID, adminID)+"/change-password", body)
}
