package middleware

import (
	"encoding/hex"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const sessionName = "app-session"

var store *sessions.CookieStore

// Init sets up the cookie store. Must be called before serving requests.
func Init(secret string) {
	store = sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}
}

// Principal is the signed-in identity carried in the session.
type Principal struct {
	ID   int
	Name string
	Role string
}

func SignIn(w http.ResponseWriter, r *http.Request, p Principal) error {
	session, _ := store.Get(r, sessionName)
	session.Values["user_id"] = p.ID
	session.Values["user_name"] = p.Name
	session.Values["role"] = p.Role
	return session.Save(r, w)
}

func SignOut(w http.ResponseWriter, r *http.Request) {
	session, _ := store.Get(r, sessionName)
	session.Options.MaxAge = -1
	session.Save(r, w)
}

func CurrentUser(r *http.Request) (Principal, bool) {
	session, _ := store.Get(r, sessionName)

	id, idOk := session.Values["user_id"].(int)
	name, _ := session.Values["user_name"].(string)
	role, _ := session.Values["role"].(string)

	if !idOk || id == 0 {
		return Principal{}, false
	}
	return Principal{ID: id, Name: name, Role: role}, true
}

// AddFlash queues a one-shot message shown on the next rendered page.
func AddFlash(w http.ResponseWriter, r *http.Request, msg string) {
	session, _ := store.Get(r, sessionName)
	session.AddFlash(msg)
	session.Save(r, w)
}

// Flashes drains the queued messages.
func Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := store.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		session.Save(r, w)
	}

	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}

// LearnID returns the opaque identifier that scopes flashcard state to this
// session, minting one on first use.
func LearnID(w http.ResponseWriter, r *http.Request) string {
	session, _ := store.Get(r, sessionName)
	if id, ok := session.Values["learn_id"].(string); ok && id != "" {
		return id
	}

	id := hex.EncodeToString(securecookie.GenerateRandomKey(16))
	session.Values["learn_id"] = id
	session.Save(r, w)
	return id
}
