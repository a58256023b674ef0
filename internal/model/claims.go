package model

import "github.com/golang-jwt/jwt/v5"

type HubConnectClaims struct {
	jwt.RegisteredClaims
}

type HubSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	UserID  string `json:"user_id"`
}
