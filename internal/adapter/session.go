package adapter

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mbarbosa/mesasync/models"
)

// SessionFromToken extracts the identity claims the sync engine needs from a
// signed bearer token. The token was issued by the remote store and already
// verified there, so claims are read without signature verification.
//
// Expected claims: "sub" (user id), "admin" (bool), "rotas" (granted route
// ids), "company_id" (tenant).
func SessionFromToken(tokenString string) (models.AccessContext, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.AccessContext{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.AccessContext{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return models.AccessContext{}, err
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return models.AccessContext{}, err
	}

	isAdmin, _ := claims["admin"].(bool)
	companyID, _ := claims["company_id"].(string)

	routes, err := parseRouteClaim(claims["rotas"])
	if err != nil {
		return models.AccessContext{}, err
	}

	return models.NewAccessContext(userID, companyID, isAdmin, routes), nil
}

func parseRouteClaim(v any) ([]int64, error) {
	if v == nil {
		return nil, nil
	}

	raw, ok := v.([]any)
	if !ok {
		return nil, errors.New("invalid rotas claim")
	}

	routes := make([]int64, 0, len(raw))
	for _, item := range raw {
		switch n := item.(type) {
		case float64:
			routes = append(routes, int64(n))
		case string:
			id, err := strconv.ParseInt(n, 10, 64)
			if err != nil {
				return nil, errors.New("invalid rotas claim")
			}
			routes = append(routes, id)
		default:
			return nil, errors.New("invalid rotas claim")
		}
	}

	return routes, nil
}
