package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/uvalib/virgo4-jwt/v4jwt"
)

func getBearerToken(authorization string) (string, error) {
	components := strings.Split(strings.Join(strings.Fields(authorization), " "), " ")

	// must have two components, the first of which is "Bearer", and the second a non-empty token
	if len(components) != 2 || components[0] != "Bearer" || components[1] == "" {
		return "", fmt.Errorf("invalid Authorization header: [%s]", authorization)
	}

	token := components[1]
	if token == "undefined" {
		return "", errors.New("bearer token is undefined")
	}

	return token, nil
}

// authMiddleware attaches patron claims when a bearer token is supplied.
// Lookups without a token are anonymous; a bad token is rejected.
func (svc *ServiceContext) authMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || svc.JWTKey == "" {
		return
	}

	token, err := getBearerToken(authHeader)
	if err != nil {
		log.Printf("WARN: authentication failed: [%s]", err.Error())
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	claims, err := v4jwt.Validate(token, svc.JWTKey)
	if err != nil {
		log.Printf("WARN: JWT signature is invalid: %s", err.Error())
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	c.Set("jwt", token)
	c.Set("claims", claims)
}

// getJWTClaims returns the patron claims attached by authMiddleware
func getJWTClaims(c *gin.Context) (*v4jwt.V4Claims, error) {
	val, ok := c.Get("claims")
	if !ok {
		return nil, errors.New("no claims")
	}
	claims, ok := val.(*v4jwt.V4Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
