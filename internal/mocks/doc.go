// Package mocks provides function-field mocks shared across test packages.
//
// Each mock has one Fn field per interface method. When the Fn field is nil
// the mock returns its default values instead:
//
//	tokens := &mocks.MockTokenService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return nil, auth.ErrExpiredToken
//	    },
//	}
package mocks
