package main

import (
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func Test_application_preferences(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	checkboxIsChecked := func(doc *goquery.Document, id string) bool {
		t.Helper()
		return doc.Find("input#" + id + "[type='checkbox']").Is("[checked]")
	}

	t.Run("shows default preferences", func(t *testing.T) {
		doc := getDoc(t, client, server.URL+"/preferences")

		if got := doc.Find("select[name='nivel'] option[selected]").AttrOr("value", ""); got != "Media" {
			t.Errorf("selected level = %q, want Media", got)
		}
		if got := doc.Find("select[name='objetivo'] option[selected]").AttrOr("value", ""); got != "Salud" {
			t.Errorf("selected goal = %q, want Salud", got)
		}
		// The seeded schedule trains Monday, Wednesday, and Friday.
		for _, day := range []string{"day-0", "day-2", "day-4"} {
			if !checkboxIsChecked(doc, day) {
				t.Errorf("expected %s to be checked by default", day)
			}
		}
		for _, day := range []string{"day-1", "day-3", "day-5", "day-6"} {
			if checkboxIsChecked(doc, day) {
				t.Errorf("expected %s to be unchecked by default", day)
			}
		}
	})

	t.Run("can update preferences", func(t *testing.T) {
		formData := url.Values{
			"nivel":         {"Alta"},
			"objetivo":      {"Fuerza"},
			"plan_template": {"ppl"},
			"train_days":    {"1", "3", "5"},
			"equipment":     {"dumbbell"},
			"quiet":         {"true"},
		}
		resp, err := client.PostForm(server.URL+"/preferences", formData)
		if err != nil {
			t.Fatalf("submit preferences: %v", err)
		}
		_ = resp.Body.Close()

		doc := getDoc(t, client, server.URL+"/preferences")
		if got := doc.Find("select[name='nivel'] option[selected]").AttrOr("value", ""); got != "Alta" {
			t.Errorf("selected level = %q, want Alta", got)
		}
		if got := doc.Find("select[name='plan_template'] option[selected]").AttrOr("value", ""); got != "ppl" {
			t.Errorf("selected template = %q, want ppl", got)
		}
		for _, day := range []string{"day-1", "day-3", "day-5"} {
			if !checkboxIsChecked(doc, day) {
				t.Errorf("expected %s to be checked after update", day)
			}
		}
		if checkboxIsChecked(doc, "day-0") {
			t.Error("expected day-0 to be unchecked after update")
		}
	})

	t.Run("invalid day selections are dropped", func(t *testing.T) {
		formData := url.Values{
			"nivel":         {"Media"},
			"objetivo":      {"Salud"},
			"plan_template": {"full_body"},
			"train_days":    {"2", "9", "junk"},
		}
		resp, err := client.PostForm(server.URL+"/preferences", formData)
		if err != nil {
			t.Fatalf("submit preferences: %v", err)
		}
		_ = resp.Body.Close()

		doc := getDoc(t, client, server.URL+"/preferences")
		if !checkboxIsChecked(doc, "day-2") {
			t.Error("expected day-2 to be checked")
		}
		for _, day := range []string{"day-0", "day-1", "day-3", "day-4", "day-5", "day-6"} {
			if checkboxIsChecked(doc, day) {
				t.Errorf("expected %s to be unchecked", day)
			}
		}
	})
}
