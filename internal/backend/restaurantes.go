package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/domain"
)

// RestauranteForm is the create/update payload. Optional fields are only
// appended to the multipart body when set, so a minimal create submits
// nothing but the name and whatever defaults the caller filled in.
type RestauranteForm struct {
	Name             string
	NIT              string
	Address          string
	City             string
	Country          string
	Timezone         string
	Subdomain        string
	PrimaryColor     string
	SubscriptionPlan string
	PlanExpiresAt    string
	ActiveModules    []string
	Logo             *LogoUpload
}

// ListRestaurantes fetches one page of tenants under the given filters.
// A response missing the data array yields an empty page rather than an
// error.
func (c *Client) ListRestaurantes(ctx context.Context, f domain.Filters) (*domain.PaginatedResponse[domain.Restaurante], error) {
	endpoint := "/restaurantes?" + f.Values().Encode()

	var page domain.PaginatedResponse[domain.Restaurante]
	if err := c.getJSON(ctx, endpoint, &page); err != nil {
		return nil, err
	}

	if page.Data == nil {
		page.Data = []domain.Restaurante{}
	}
	if page.Page < 1 {
		page.Page = f.Page
	}
	if page.Limit < 1 {
		page.Limit = f.Limit
	}
	return &page, nil
}

// CreateRestaurante submits the multipart create request.
func (c *Client) CreateRestaurante(ctx context.Context, form RestauranteForm) error {
	body, contentType, err := form.encodeMultipart()
	if err != nil {
		return err
	}
	return c.doWithRetry(ctx, http.MethodPost, "/restaurantes", contentType, body, nil)
}

// UpdateRestaurante submits the multipart update request.
func (c *Client) UpdateRestaurante(ctx context.Context, id string, form RestauranteForm) error {
	body, contentType, err := form.encodeMultipart()
	if err != nil {
		return err
	}
	return c.doWithRetry(ctx, http.MethodPut, "/restaurantes/"+url.PathEscape(id), contentType, body, nil)
}

// DeleteRestaurante issues the delete call; the server owns deletion
// semantics.
func (c *Client) DeleteRestaurante(ctx context.Context, id string) error {
	return c.doWithRetry(ctx, http.MethodDelete, "/restaurantes/"+url.PathEscape(id)+"/delete", "", nil, nil)
}

func (f RestauranteForm) encodeMultipart() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct {
		name  string
		value string
	}{
		{"name", f.Name},
		{"nit", f.NIT},
		{"address", f.Address},
		{"city", f.City},
		{"country", f.Country},
		{"timezone", f.Timezone},
		{"subdomain", f.Subdomain},
		{"primaryColor", f.PrimaryColor},
		{"subscriptionPlan", f.SubscriptionPlan},
		{"planExpiresAt", f.PlanExpiresAt},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field.name, err)
		}
	}

	if f.ActiveModules != nil {
		encoded, err := json.Marshal(f.ActiveModules)
		if err != nil {
			return nil, "", fmt.Errorf("encode activeModules: %w", err)
		}
		if err := w.WriteField("activeModules", string(encoded)); err != nil {
			return nil, "", fmt.Errorf("write field activeModules: %w", err)
		}
	}

	if f.Logo != nil {
		part, err := w.CreateFormFile("logo", f.Logo.Name())
		if err != nil {
			return nil, "", fmt.Errorf("create logo part: %w", err)
		}
		r, err := f.Logo.Open()
		if err != nil {
			return nil, "", err
		}
		_, err = io.Copy(part, r)
		_ = r.Close()
		if err != nil {
			return nil, "", fmt.Errorf("copy logo: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
