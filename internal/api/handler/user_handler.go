package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type meResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// Me returns the identity embedded in the caller's access token.
//
// @Summary      Current user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorBody
// @Router       /users/me [get]
func Me(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{ID: userID, Role: string(role)})
}
