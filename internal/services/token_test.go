package services_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/adsmock/ads-api-mock/internal/services"
	srvErrors "github.com/adsmock/ads-api-mock/pkg/errors"
)

var _ = Describe("TokenService", func() {
	var srv *services.TokenService

	const (
		clientID     = "test-client"
		clientSecret = "test-secret"
	)

	BeforeEach(func() {
		srv = services.NewTokenService(clientID, clientSecret, "unit-test-signing-key", time.Hour, 24*time.Hour)
	})

	Describe("IssueAuthCode", func() {
		It("hands out a code for the configured client", func() {
			code, err := srv.IssueAuthCode(clientID)
			Expect(err).ToNot(HaveOccurred())
			Expect(code).ToNot(BeEmpty())
		})

		It("rejects an unknown client id", func() {
			_, err := srv.IssueAuthCode("somebody-else")
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})

		It("hands out a different code every time", func() {
			first, err := srv.IssueAuthCode(clientID)
			Expect(err).ToNot(HaveOccurred())
			second, err := srv.IssueAuthCode(clientID)
			Expect(err).ToNot(HaveOccurred())
			Expect(first).ToNot(Equal(second))
		})
	})

	Describe("ExchangeCode", func() {
		It("issues a token pair for a valid code", func() {
			code, err := srv.IssueAuthCode(clientID)
			Expect(err).ToNot(HaveOccurred())

			token, err := srv.ExchangeCode(clientID, clientSecret, code)
			Expect(err).ToNot(HaveOccurred())
			Expect(token.AccessToken).ToNot(BeEmpty())
			Expect(token.RefreshToken).ToNot(BeEmpty())
			Expect(token.TokenType).To(Equal("Bearer"))
			Expect(token.ExpiresIn).To(Equal(int64(3600)))
		})

		It("consumes the code on first use", func() {
			code, err := srv.IssueAuthCode(clientID)
			Expect(err).ToNot(HaveOccurred())

			_, err = srv.ExchangeCode(clientID, clientSecret, code)
			Expect(err).ToNot(HaveOccurred())

			_, err = srv.ExchangeCode(clientID, clientSecret, code)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsInvalidGrantError(err)).To(BeTrue())
		})

		It("rejects a code it never issued", func() {
			_, err := srv.ExchangeCode(clientID, clientSecret, "made-up")
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsInvalidGrantError(err)).To(BeTrue())
		})

		It("rejects wrong client credentials", func() {
			code, err := srv.IssueAuthCode(clientID)
			Expect(err).ToNot(HaveOccurred())

			_, err = srv.ExchangeCode(clientID, "wrong-secret", code)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsUnauthorizedError(err)).To(BeTrue())
		})
	})

	Describe("Refresh", func() {
		var refreshToken string

		BeforeEach(func() {
			code, err := srv.IssueAuthCode(clientID)
			Expect(err).ToNot(HaveOccurred())
			token, err := srv.ExchangeCode(clientID, clientSecret, code)
			Expect(err).ToNot(HaveOccurred())
			refreshToken = token.RefreshToken
		})

		It("issues a fresh pair for a valid refresh token", func() {
			token, err := srv.Refresh(clientID, clientSecret, refreshToken)
			Expect(err).ToNot(HaveOccurred())
			Expect(token.AccessToken).ToNot(BeEmpty())
		})

		It("rejects an access token used as a refresh token", func() {
			code, err := srv.IssueAuthCode(clientID)
			Expect(err).ToNot(HaveOccurred())
			token, err := srv.ExchangeCode(clientID, clientSecret, code)
			Expect(err).ToNot(HaveOccurred())

			_, err = srv.Refresh(clientID, clientSecret, token.AccessToken)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsInvalidGrantError(err)).To(BeTrue())
		})

		It("rejects garbage", func() {
			_, err := srv.Refresh(clientID, clientSecret, "not-a-jwt")
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsInvalidGrantError(err)).To(BeTrue())
		})
	})

	Describe("ValidateAccessToken", func() {
		It("accepts a freshly issued access token", func() {
			code, err := srv.IssueAuthCode(clientID)
			Expect(err).ToNot(HaveOccurred())
			token, err := srv.ExchangeCode(clientID, clientSecret, code)
			Expect(err).ToNot(HaveOccurred())

			Expect(srv.ValidateAccessToken(token.AccessToken)).To(Succeed())
		})

		It("rejects a refresh token on the API surface", func() {
			code, err := srv.IssueAuthCode(clientID)
			Expect(err).ToNot(HaveOccurred())
			token, err := srv.ExchangeCode(clientID, clientSecret, code)
			Expect(err).ToNot(HaveOccurred())

			err = srv.ValidateAccessToken(token.RefreshToken)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsUnauthorizedError(err)).To(BeTrue())
		})

		It("rejects a token signed with a different key", func() {
			other := services.NewTokenService(clientID, clientSecret, "a-different-key", time.Hour, 24*time.Hour)
			code, err := other.IssueAuthCode(clientID)
			Expect(err).ToNot(HaveOccurred())
			token, err := other.ExchangeCode(clientID, clientSecret, code)
			Expect(err).ToNot(HaveOccurred())

			err = srv.ValidateAccessToken(token.AccessToken)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsUnauthorizedError(err)).To(BeTrue())
		})
	})
})
