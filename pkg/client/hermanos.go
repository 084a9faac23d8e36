package client

import (
	"fmt"
	"net/http"

	hermanoDTO "hermanar_backend/internals/features/hermanos/dto"
)

func (c *Client) GetAllHermanos() ([]hermanoDTO.HermanoResponse, error) {
	var out []hermanoDTO.HermanoResponse
	err := c.invoke(http.MethodGet, "/api/hermanos", nil, nil, &out)
	return out, err
}

func (c *Client) GetHermanosActivos() ([]hermanoDTO.HermanoResponse, error) {
	var out []hermanoDTO.HermanoResponse
	err := c.invoke(http.MethodGet, "/api/hermanos/activos", nil, nil, &out)
	return out, err
}

func (c *Client) GetHermano(id uint) (*hermanoDTO.HermanoResponse, error) {
	var out hermanoDTO.HermanoResponse
	err := c.invoke(http.MethodGet, fmt.Sprintf("/api/hermanos/%d", id), nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchHermanos(query string) ([]hermanoDTO.HermanoResponse, error) {
	var out []hermanoDTO.HermanoResponse
	err := c.invoke(http.MethodGet, "/api/hermanos/search", nil, map[string]string{"q": query}, &out)
	return out, err
}

func (c *Client) GetHermanosByFamilia(familiaID uint) ([]hermanoDTO.HermanoResponse, error) {
	var out []hermanoDTO.HermanoResponse
	err := c.invoke(http.MethodGet, fmt.Sprintf("/api/familias/%d/hermanos", familiaID), nil, nil, &out)
	return out, err
}

func (c *Client) CreateHermano(req hermanoDTO.HermanoRequest) (*hermanoDTO.HermanoResponse, error) {
	var out hermanoDTO.HermanoResponse
	err := c.invoke(http.MethodPost, "/api/hermanos", req, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateHermano(id uint, req hermanoDTO.HermanoRequest) (*hermanoDTO.HermanoResponse, error) {
	var out hermanoDTO.HermanoResponse
	err := c.invoke(http.MethodPut, fmt.Sprintf("/api/hermanos/%d", id), req, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateHermanoFamilia reasigna la familia de un hermano; con nil la desvincula.
func (c *Client) UpdateHermanoFamilia(id uint, familiaID *uint) error {
	return c.invoke(http.MethodPatch, fmt.Sprintf("/api/hermanos/%d/familia", id),
		hermanoDTO.UpdateHermanoFamiliaRequest{FamiliaID: familiaID}, nil, nil)
}

func (c *Client) SetHermanoInactive(id uint) error {
	return c.invoke(http.MethodPatch, fmt.Sprintf("/api/hermanos/%d/baja", id), nil, nil, nil)
}

func (c *Client) DeleteHermano(id uint) error {
	return c.invoke(http.MethodDelete, fmt.Sprintf("/api/hermanos/%d", id), nil, nil, nil)
}
