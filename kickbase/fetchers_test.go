package kickbase

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// testClient returns a Client wired to a fake API. The daily cache is
// bypassed so tests never touch the real temp-dir cache.
func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{base: srv.URL, token: "test-token", hc: srv.Client(), cache: srv.Client()}
}

func TestLogin(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/user/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"tkn": "fresh-token", "u": {"name": "alice"}}`))
	})
	c.token = ""

	if err := c.Login("alice@example.com", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if c.token != "fresh-token" {
		t.Errorf("token = %q, want fresh-token", c.token)
	}
}

func TestLogin_Rejected(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong credentials", http.StatusUnauthorized)
	})

	if err := c.Login("alice@example.com", "wrong"); err == nil {
		t.Error("Login() expected an error for a 401")
	}
}

func TestLeagueID(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"it": [{"i": "4711", "n": "Bunsenliga"}, {"i": "4712", "n": "Other"}]}`))
	})

	id, err := c.LeagueID("Bunsenliga")
	if err != nil {
		t.Fatalf("LeagueID() error = %v", err)
	}
	if id != "4711" {
		t.Errorf("LeagueID() = %q, want 4711", id)
	}

	if _, err := c.LeagueID("Nope"); err == nil {
		t.Error("LeagueID() expected an error for an unknown league")
	}
}

func TestManagers(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/leagues/4711/ranking" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		// numeric ids, as some API versions send them
		w.Write([]byte(`{"us": [{"i": 1, "n": "Alice"}, {"i": 2, "n": "Bob"}]}`))
	})

	managers, err := c.Managers("4711")
	if err != nil {
		t.Fatalf("Managers() error = %v", err)
	}
	if len(managers) != 2 {
		t.Fatalf("Managers() returned %d entries, want 2", len(managers))
	}
	if managers[0].ID != "1" || managers[0].Name != "Alice" {
		t.Errorf("managers[0] = %+v", managers[0])
	}
}

func TestActivities(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/leagues/4711/activitiesFeed" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("max"); got != "5000" {
			t.Errorf("max = %q, want 5000", got)
		}
		w.Write([]byte(`{"af": [
			{"t": 15, "dt": "2025-12-23T10:00:00Z", "data": {"byr": "Alice", "pn": "X", "trp": 1000000}},
			{"t": 22, "dt": "2025-12-23T07:00:00Z", "data": {"bn": 50000}}
		]}`))
	})

	events, err := c.Activities("4711")
	if err != nil {
		t.Fatalf("Activities() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Activities() returned %d events, want 2", len(events))
	}
	if events[0].Buyer() != "Alice" || events[0].Price() != 1_000_000 {
		t.Errorf("events[0] decoded as %+v", events[0])
	}
	if events[1].Bonus() != 50_000 {
		t.Errorf("events[1] bonus = %d, want 50000", events[1].Bonus())
	}
}

func TestAchievementReward(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/leagues/4711/user/achievements/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"a": 3, "r": 100000}`))
	})

	count, perUnit, err := c.AchievementReward("4711", 7)
	if err != nil {
		t.Fatalf("AchievementReward() error = %v", err)
	}
	if count != 3 || perUnit != 100_000 {
		t.Errorf("AchievementReward() = (%d, %d), want (3, 100000)", count, perUnit)
	}
}

func TestAchievementReward_Failure(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	if _, _, err := c.AchievementReward("4711", 99); err == nil {
		t.Error("AchievementReward() expected an error for a 404")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	c := &Client{token: "stored-token"}
	if err := c.SaveSession(); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	d := &Client{}
	if err := d.LoadSession(); err != nil {
		t.Fatalf("LoadSession() error = %v", err)
	}
	if d.token != "stored-token" {
		t.Errorf("restored token = %q, want stored-token", d.token)
	}
}

func TestSaveSession_RequiresLogin(t *testing.T) {
	if err := (&Client{}).SaveSession(); err == nil {
		t.Error("SaveSession() expected an error without a token")
	}
}
