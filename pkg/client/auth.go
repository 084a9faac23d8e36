package client

import (
	"net/http"

	userDTO "hermanar_backend/internals/features/users/dto"
)

// Login inicia sesión y deja el token fijado en el cliente.
func (c *Client) Login(userName, password string) (string, error) {
	var resp userDTO.LoginResponse
	err := c.invoke(http.MethodPost, "/api/auth/login", userDTO.LoginRequest{
		UserName: userName,
		Password: password,
	}, nil, &resp)
	if err != nil {
		return "", err
	}
	c.SetToken(resp.Token)
	return resp.Token, nil
}
