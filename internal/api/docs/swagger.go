package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// RestauranteData represents a tenant in responses
type RestauranteData struct {
	ID               string   `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name             string   `json:"name" example:"Al Carbon"`
	Subdomain        string   `json:"subdomain" example:"alcarbon"`
	NIT              string   `json:"nit" example:"900123456-7"`
	Address          string   `json:"address" example:"Cra 7 # 12-34"`
	City             string   `json:"city" example:"Bogota"`
	Country          string   `json:"country" example:"Colombia"`
	SubscriptionPlan string   `json:"subscriptionPlan" example:"BASICO"`
	ActiveModules    []string `json:"activeModules" example:"reservas,pedidos"`
	IsActive         bool     `json:"isActive" example:"true"`
}

// RestaurantesListMeta carries pagination and view state
type RestaurantesListMeta struct {
	Total         int    `json:"total" example:"12"`
	Page          int    `json:"page" example:"1"`
	Limit         int    `json:"limit" example:"5"`
	TotalPages    int    `json:"totalPages" example:"3"`
	PageWindow    []int  `json:"pageWindow" example:"1,2,3"`
	State         string `json:"state" example:"ok"`
	ActiveFilters int    `json:"activeFilters" example:"0"`
	SearchInput   string `json:"searchInput" example:""`
}

// RestaurantesListResponse wraps a tenants page
type RestaurantesListResponse struct {
	Data []RestauranteData    `json:"data"`
	Meta RestaurantesListMeta `json:"meta"`
}

// FiltersData represents the filter state
type FiltersData struct {
	Page             int    `json:"page" example:"1"`
	Limit            int    `json:"limit" example:"5"`
	Search           string `json:"search,omitempty" example:"carbon"`
	IsActive         *bool  `json:"isActive,omitempty" example:"true"`
	SubscriptionPlan string `json:"subscriptionPlan,omitempty" example:"PRO"`
	City             string `json:"city,omitempty" example:"Bogota"`
}

// FiltersResponse wraps the filter state
type FiltersResponse struct {
	Data FiltersData `json:"data"`
}

// AdminData represents a restaurante admin account
type AdminData struct {
	ID    string `json:"id" example:"a1b2c3"`
	Name  string `json:"name" example:"Maria Lopez"`
	Email string `json:"email" example:"maria@alcarbon.co"`
}

// AdminsListResponse wraps an admins listing
type AdminsListResponse struct {
	Data []AdminData `json:"data"`
	Meta struct {
		RestauranteID string `json:"restauranteId" example:"550e8400-e29b-41d4-a716-446655440000"`
		SearchInput   string `json:"searchInput" example:"maria"`
		Search        string `json:"search" example:"maria"`
		Total         int    `json:"total" example:"3"`
	} `json:"meta"`
}

// CredentialResponse reports a credential-producing mutation
type CredentialResponse struct {
	Data struct {
		Password  string `json:"password,omitempty" example:"Xk4#mPq9w2Tz"`
		Generated bool   `json:"generated" example:"true"`
	} `json:"data"`
}

// MessageResponse wraps an acknowledgement message
type MessageResponse struct {
	Data struct {
		Message string `json:"message" example:"restaurante created"`
	} `json:"data"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code" example:"VALIDATION_FAILED"`
	Message string `json:"message" example:"Request validation failed"`
}

// NewSwagger creates and configures the Swagger documentation
func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "Pachamama Super Admin Dashboard API",
		Version:     "v0.1.0",
		Description: "Tenant and admin-account management surface over the Pachamama platform API",
		Host:        "localhost:3000",
		Path:        "/api",
	})

	badRequest := response.New(ErrorResponse{Code: "BAD_REQUEST", Message: "Invalid request"}, "400", "Bad Request")
	forbidden := response.New(ErrorResponse{Code: "FORBIDDEN", Message: "Access denied"}, "403", "Forbidden")
	validation := response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "Request validation failed"}, "422", "Unprocessable Entity")
	upstream := response.New(ErrorResponse{Code: "UPSTREAM_REJECTED", Message: "The platform API rejected the request"}, "502", "Bad Gateway")

	endpoints := []*endpoint.EndPoint{
		endpoint.New(
			endpoint.GET,
			"/restaurantes",
			endpoint.WithTags("Restaurantes"),
			endpoint.WithSummary("List restaurantes"),
			endpoint.WithDescription("Returns one page of tenants under the session's current filter state"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(RestaurantesListResponse{}, "200", "Page retrieved successfully"),
			}),
			endpoint.WithErrors([]response.Response{forbidden, upstream}),
		),

		endpoint.New(
			endpoint.PUT,
			"/restaurantes/filters",
			endpoint.WithTags("Restaurantes"),
			endpoint.WithSummary("Update list filters"),
			endpoint.WithDescription("Merges a partial filter update into the session state; constraint changes reset the page, search is debounced"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(FiltersResponse{}, "200", "Filters updated"),
			}),
			endpoint.WithErrors([]response.Response{badRequest, forbidden, validation}),
		),

		endpoint.New(
			endpoint.DELETE,
			"/restaurantes/filters",
			endpoint.WithTags("Restaurantes"),
			endpoint.WithSummary("Clear list filters"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(FiltersResponse{}, "200", "Filters reset"),
			}),
			endpoint.WithErrors([]response.Response{forbidden}),
		),

		endpoint.New(
			endpoint.POST,
			"/restaurantes",
			endpoint.WithTags("Restaurantes"),
			endpoint.WithSummary("Create a restaurante"),
			endpoint.WithDescription("Creates a tenant. Blank optional fields take the platform defaults; a logo file may be attached."),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(MessageResponse{}, "201", "Restaurante created"),
			}),
			endpoint.WithErrors([]response.Response{badRequest, forbidden, validation, upstream}),
		),

		endpoint.New(
			endpoint.PUT,
			"/restaurantes/{id}",
			endpoint.WithTags("Restaurantes"),
			endpoint.WithSummary("Update a restaurante"),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Restaurante id")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(MessageResponse{}, "200", "Restaurante updated"),
			}),
			endpoint.WithErrors([]response.Response{badRequest, forbidden, validation, upstream}),
		),

		endpoint.New(
			endpoint.DELETE,
			"/restaurantes/{id}",
			endpoint.WithTags("Restaurantes"),
			endpoint.WithSummary("Delete a restaurante"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Restaurante id")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(MessageResponse{}, "200", "Restaurante deleted"),
			}),
			endpoint.WithErrors([]response.Response{badRequest, forbidden, upstream}),
		),

		endpoint.New(
			endpoint.GET,
			"/restaurantes/{id}/admins",
			endpoint.WithTags("Admins"),
			endpoint.WithSummary("List admins of a restaurante"),
			endpoint.WithDescription("Returns the tenant's admin accounts, re-filtered by the session's debounced search"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Restaurante id")),
				parameter.StrParam("search", parameter.Query, parameter.WithDescription("Case-insensitive name/email search")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(AdminsListResponse{}, "200", "Admins retrieved successfully"),
			}),
			endpoint.WithErrors([]response.Response{badRequest, forbidden, upstream}),
		),

		endpoint.New(
			endpoint.POST,
			"/restaurantes/{id}/admins",
			endpoint.WithTags("Admins"),
			endpoint.WithSummary("Create an admin account"),
			endpoint.WithDescription("Creates an admin. A blank password requests a generated one, returned exactly once."),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Restaurante id")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(CredentialResponse{}, "201", "Admin created"),
			}),
			endpoint.WithErrors([]response.Response{badRequest, forbidden, validation, upstream}),
		),

		endpoint.New(
			endpoint.PUT,
			"/restaurantes/{id}/admins/{adminId}",
			endpoint.WithTags("Admins"),
			endpoint.WithSummary("Update an admin account"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Restaurante id")),
				parameter.StrParam("adminId", parameter.Path, parameter.WithDescription("Admin id")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(MessageResponse{}, "200", "Admin updated"),
			}),
			endpoint.WithErrors([]response.Response{badRequest, forbidden, validation, upstream}),
		),

		endpoint.New(
			endpoint.DELETE,
			"/restaurantes/{id}/admins/{adminId}",
			endpoint.WithTags("Admins"),
			endpoint.WithSummary("Delete an admin account"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Restaurante id")),
				parameter.StrParam("adminId", parameter.Path, parameter.WithDescription("Admin id")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(MessageResponse{}, "200", "Admin deleted"),
			}),
			endpoint.WithErrors([]response.Response{badRequest, forbidden, upstream}),
		),

		endpoint.New(
			endpoint.POST,
			"/restaurantes/{id}/admins/{adminId}/change-password",
			endpoint.WithTags("Admins"),
			endpoint.WithSummary("Reset an admin password"),
			endpoint.WithDescription("Resets the password. A blank password requests a generated one, returned exactly once."),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Restaurante id")),
				parameter.StrParam("adminId", parameter.Path, parameter.WithDescription("Admin id")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(CredentialResponse{}, "200", "Password changed"),
			}),
			endpoint.WithErrors([]response.Response{badRequest, forbidden, validation, upstream}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
