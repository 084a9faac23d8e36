package client

import (
	"fmt"
	"net/http"

	familiaDTO "hermanar_backend/internals/features/familias/dto"
)

func (c *Client) GetAllFamilias() ([]familiaDTO.FamiliaResponse, error) {
	var out []familiaDTO.FamiliaResponse
	err := c.invoke(http.MethodGet, "/api/familias", nil, nil, &out)
	return out, err
}

func (c *Client) GetFamilia(id uint) (*familiaDTO.FamiliaResponse, error) {
	var out familiaDTO.FamiliaResponse
	err := c.invoke(http.MethodGet, fmt.Sprintf("/api/familias/%d", id), nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchFamilias(query string) ([]familiaDTO.FamiliaResponse, error) {
	var out []familiaDTO.FamiliaResponse
	err := c.invoke(http.MethodGet, "/api/familias/search", nil, map[string]string{"q": query}, &out)
	return out, err
}

func (c *Client) GetFamiliaStats(id uint) (*familiaDTO.FamiliaStatsResponse, error) {
	var out familiaDTO.FamiliaStatsResponse
	err := c.invoke(http.MethodGet, fmt.Sprintf("/api/familias/%d/stats", id), nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetFamiliaWithAddress(id uint) (*familiaDTO.FamiliaWithAddressResponse, error) {
	var out familiaDTO.FamiliaWithAddressResponse
	err := c.invoke(http.MethodGet, fmt.Sprintf("/api/familias/%d/direccion", id), nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateFamilia(req familiaDTO.FamiliaRequest) (*familiaDTO.FamiliaResponse, error) {
	var out familiaDTO.FamiliaResponse
	err := c.invoke(http.MethodPost, "/api/familias", req, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateFamilia(id uint, req familiaDTO.FamiliaRequest) (*familiaDTO.FamiliaResponse, error) {
	var out familiaDTO.FamiliaResponse
	err := c.invoke(http.MethodPut, fmt.Sprintf("/api/familias/%d", id), req, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteFamilia(id uint) error {
	return c.invoke(http.MethodDelete, fmt.Sprintf("/api/familias/%d", id), nil, nil, nil)
}
