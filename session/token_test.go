package session_test

import (
	"time"

	. "github.com/Sproutly/SPROUT-MOBILE/session"

	"github.com/dgrijalva/jwt-go"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("TokenExpiry", func() {

	It("should read the exp claim without verifying the signature", func() {
		expiry := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "u1",
			"exp": expiry.Unix(),
		})
		signed, err := token.SignedString([]byte("some-secret-the-client-never-knows"))
		Expect(err).To(BeNil())

		at, err := TokenExpiry(signed)
		Expect(err).To(BeNil())
		Expect(at.UTC()).To(Equal(expiry))
	})

	It("should report a token without an exp claim", func() {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
		signed, err := token.SignedString([]byte("secret"))
		Expect(err).To(BeNil())

		_, err = TokenExpiry(signed)
		Expect(errors.Cause(err)).To(Equal(ErrNoExpiryClaim))
	})

	It("should fail on garbage input", func() {
		_, err := TokenExpiry("not-a-jwt")
		Expect(err).NotTo(BeNil())
	})
})
