package models

// Token is the payload of a successful OAuth token exchange.
type Token struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int64
}
