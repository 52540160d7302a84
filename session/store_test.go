package session_test

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/Sproutly/SPROUT-MOBILE/session"
	"github.com/Sproutly/SPROUT-MOBILE/shared"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("FileStore", func() {

	var (
		tempDir string
		store   *FileStore
	)

	BeforeEach(func() {
		var err error
		tempDir, err = ioutil.TempDir("", "sprout-session-test")
		Expect(err).To(BeNil())
		store = NewFileStore(tempDir, shared.NewLogger("session-test"))
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	It("should round-trip the token pair", func() {
		Expect(store.StoreTokens("access-1", "refresh-1")).To(Succeed())
		Expect(store.AccessToken()).To(Equal("access-1"))
		Expect(store.RefreshToken()).To(Equal("refresh-1"))
	})

	It("should treat a missing file as logged out", func() {
		Expect(store.AccessToken()).To(Equal(""))
		Expect(store.RefreshToken()).To(Equal(""))
	})

	It("should treat a corrupt file as logged out instead of failing", func() {
		Expect(ioutil.WriteFile(store.Path, []byte("not json"), 0600)).To(Succeed())
		Expect(store.AccessToken()).To(Equal(""))
	})

	It("should clear both tokens and the saved user", func() {
		Expect(store.StoreTokens("access-1", "refresh-1")).To(Succeed())
		Expect(store.SaveUser(json.RawMessage(`{"id":"u1"}`))).To(Succeed())

		Expect(store.Clear()).To(Succeed())

		Expect(store.AccessToken()).To(Equal(""))
		_, err := store.LoadUser()
		Expect(errors.Cause(err)).To(Equal(ErrNoSavedUser))
	})

	It("should tolerate clearing an empty store", func() {
		Expect(store.Clear()).To(Succeed())
	})

	It("should keep the saved user across token updates", func() {
		Expect(store.SaveUser(json.RawMessage(`{"id":"u1"}`))).To(Succeed())
		Expect(store.StoreTokens("access-2", "refresh-2")).To(Succeed())

		blob, err := store.LoadUser()
		Expect(err).To(BeNil())
		Expect(string(blob)).To(Equal(`{"id":"u1"}`))
	})

	It("should write the session file with owner-only permissions", func() {
		Expect(store.StoreTokens("access-1", "refresh-1")).To(Succeed())

		info, err := os.Stat(filepath.Join(tempDir, "session.json"))
		Expect(err).To(BeNil())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0600)))
	})
})
