package domain

import "testing"

func TestSubscriber_EligibleFor(t *testing.T) {
	cases := []struct {
		name string
		sub  Subscriber
		key  string
		want bool
	}{
		{"approved and subscribed", Subscriber{Approved: true, Subscription: "PKK_FOREIGNERS"}, "PKK_FOREIGNERS", true},
		{"not approved", Subscriber{Subscription: "PKK_FOREIGNERS"}, "PKK_FOREIGNERS", false},
		{"other service", Subscriber{Approved: true, Subscription: "REGISTRATION_RP"}, "PKK_FOREIGNERS", false},
		{"no subscription", Subscriber{Approved: true}, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sub.EligibleFor(tc.key); got != tc.want {
				t.Fatalf("EligibleFor(%q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}
