package api

import (
	"context"
	"fmt"

	"github.com/justhoadoan/AuraControl-Spa-Management-System-sub000/models"
)

// Admin-scoped CRUD. The client only relays these; the backend enforces the
// actual authorization on every call.

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	_, err := c.R().SetContext(ctx).SetResult(&out).Get("/services")
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return out, nil
}

func (c *Client) GetService(ctx context.Context, id string) (*models.Service, error) {
	var out models.Service
	_, err := c.R().SetContext(ctx).SetResult(&out).Get("/services/" + id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &out, nil
}

func (c *Client) CreateService(ctx context.Context, svc models.Service) (*models.Service, error) {
	var out models.Service
	_, err := c.R().SetContext(ctx).SetBody(svc).SetResult(&out).Post("/services")
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, svc models.Service) (*models.Service, error) {
	var out models.Service
	_, err := c.R().SetContext(ctx).SetBody(svc).SetResult(&out).Put("/services/" + id)
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	_, err := c.R().SetContext(ctx).Delete("/services/" + id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func (c *Client) ListTechnicians(ctx context.Context) ([]models.Technician, error) {
	var out []models.Technician
	_, err := c.R().SetContext(ctx).SetResult(&out).Get("/technicians")
	if err != nil {
		return nil, fmt.Errorf("list technicians: %w", err)
	}
	return out, nil
}

func (c *Client) CreateTechnician(ctx context.Context, tech models.Technician) (*models.Technician, error) {
	var out models.Technician
	_, err := c.R().SetContext(ctx).SetBody(tech).SetResult(&out).Post("/technicians")
	if err != nil {
		return nil, fmt.Errorf("create technician: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateTechnician(ctx context.Context, id string, tech models.Technician) (*models.Technician, error) {
	var out models.Technician
	_, err := c.R().SetContext(ctx).SetBody(tech).SetResult(&out).Put("/technicians/" + id)
	if err != nil {
		return nil, fmt.Errorf("update technician: %w", err)
	}
	return &out, nil
}

func (c *Client) DeleteTechnician(ctx context.Context, id string) error {
	_, err := c.R().SetContext(ctx).Delete("/technicians/" + id)
	if err != nil {
		return fmt.Errorf("delete technician: %w", err)
	}
	return nil
}

func (c *Client) ListResources(ctx context.Context) ([]models.Resource, error) {
	var out []models.Resource
	_, err := c.R().SetContext(ctx).SetResult(&out).Get("/resources")
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return out, nil
}

func (c *Client) CreateResource(ctx context.Context, res models.Resource) (*models.Resource, error) {
	var out models.Resource
	_, err := c.R().SetContext(ctx).SetBody(res).SetResult(&out).Post("/resources")
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateResource(ctx context.Context, id string, res models.Resource) (*models.Resource, error) {
	var out models.Resource
	_, err := c.R().SetContext(ctx).SetBody(res).SetResult(&out).Put("/resources/" + id)
	if err != nil {
		return nil, fmt.Errorf("update resource: %w", err)
	}
	return &out, nil
}

func (c *Client) DeleteResource(ctx context.Context, id string) error {
	_, err := c.R().SetContext(ctx).Delete("/resources/" + id)
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	return nil
}

func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	_, err := c.R().SetContext(ctx).SetResult(&out).Get("/customers")
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, cust models.Customer) (*models.Customer, error) {
	var out models.Customer
	_, err := c.R().SetContext(ctx).SetBody(cust).SetResult(&out).Put("/customers/" + id)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return &out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	_, err := c.R().SetContext(ctx).Delete("/customers/" + id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// ListAppointments returns all appointments, admin view.
func (c *Client) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	_, err := c.R().SetContext(ctx).SetResult(&out).Get("/appointments")
	if err != nil {
		return nil, fmt.Errorf("list all appointments: %w", err)
	}
	return out, nil
}
