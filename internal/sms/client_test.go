package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClientSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "AC123", user)
		require.Equal(t, "token", pass)

		require.NoError(t, r.ParseForm())
		require.Equal(t, "+61480000000", r.PostFormValue("From"))
		require.Equal(t, "+61499999999", r.PostFormValue("To"))
		require.Equal(t, "g'day", r.PostFormValue("Body"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM123"}`))
	}))
	defer srv.Close()

	c := NewClient("AC123", "token", "+61480000000", 5*time.Second)
	c.BaseURL = srv.URL

	sid, err := c.Send(context.Background(), "+61499999999", "g'day")
	require.NoError(t, err)
	require.Equal(t, "SM123", sid)
}

func TestClientSendProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":21211,"message":"invalid 'To' number"}`))
	}))
	defer srv.Close()

	c := NewClient("AC123", "token", "+61480000000", 5*time.Second)
	c.BaseURL = srv.URL

	_, err := c.Send(context.Background(), "bogus", "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid 'To' number")
}

func TestClientSendMissingSID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient("AC123", "token", "+61480000000", 5*time.Second)
	c.BaseURL = srv.URL

	_, err := c.Send(context.Background(), "+61499999999", "hello")
	require.Error(t, err)
}

func TestClientSendValidation(t *testing.T) {
	c := NewClient("", "", "", time.Second)
	_, err := c.Send(context.Background(), "+61499999999", "x")
	require.Error(t, err)

	c = NewClient("AC123", "token", "", time.Second)
	_, err = c.Send(context.Background(), "+61499999999", "x")
	require.Error(t, err)

	c = NewClient("AC123", "token", "+61480000000", time.Second)
	_, err = c.Send(context.Background(), "", "x")
	require.Error(t, err)
}
