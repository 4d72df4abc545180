package consts

import "testing"

func TestServices_UniqueKeysAndIDs(t *testing.T) {
	keys := map[string]bool{}
	ids := map[int]bool{}
	for _, s := range Services {
		if keys[s.Key] {
			t.Fatalf("duplicate key %s", s.Key)
		}
		if ids[s.ServiceID] {
			t.Fatalf("duplicate service id %d", s.ServiceID)
		}
		keys[s.Key] = true
		ids[s.ServiceID] = true
		if s.DisplayName == "" || s.ButtonLabel == "" {
			t.Fatalf("entry %s has empty labels", s.Key)
		}
	}
}

func TestServices_Order(t *testing.T) {
	want := []string{PKKForeigners, PlasticLicence, RegistrationRP, RegistrationAbroad}
	if len(Services) != len(want) {
		t.Fatalf("expected %d services, got %d", len(want), len(Services))
	}
	for i, k := range want {
		if Services[i].Key != k {
			t.Fatalf("position %d: want %s, got %s", i, k, Services[i].Key)
		}
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup(PKKForeigners)
	if !ok || s.ServiceID != 55039 {
		t.Fatalf("unexpected lookup result: %+v %v", s, ok)
	}
	if _, ok := Lookup("pkk_foreigners"); ok {
		t.Fatal("lookup must be case sensitive")
	}
	if IsKnown("") {
		t.Fatal("empty key must not be known")
	}
}
