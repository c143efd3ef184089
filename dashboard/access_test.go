package dashboard

import "testing"

// The staff and own-borrower grants decide without touching storage, so a
// nil handle proves no lookup happened.
func TestCanViewBorrower_GrantsWithoutLookup(t *testing.T) {
	cases := []struct {
		name       string
		access     Access
		borrowerId int
	}{
		{"staff", Access{Staff: true}, 42},
		{"session pinned to borrower", Access{BorrowerId: 7}, 7},
		{"borrower session with company", Access{CompanyId: 3, BorrowerId: 7}, 7},
	}
	for _, tc := range cases {
		ok, err := CanViewBorrower(nil, tc.access, tc.borrowerId)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !ok {
			t.Fatalf("%s: expected access granted", tc.name)
		}
	}
}

func TestResolveBorrower_DefaultsToSession(t *testing.T) {
	got, err := ResolveBorrower(nil, Access{BorrowerId: 7}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected session borrower 7, got %d", got)
	}
}

func TestResolveBorrower_NoBorrowerAnywhere(t *testing.T) {
	if _, err := ResolveBorrower(nil, Access{CompanyId: 3}, 0); err == nil {
		t.Fatal("expected not-found for a session with no borrower")
	}
}
