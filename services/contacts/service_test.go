package contacts

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"aria/models"
)

type stubRepo struct {
	contacts []models.Contact
	replaced []models.Contact
	err      error
}

func (s *stubRepo) GetAll(string) ([]models.Contact, error) {
	return s.contacts, s.err
}

func (s *stubRepo) ReplaceAll(_ string, list []models.Contact) error {
	if s.err != nil {
		return s.err
	}
	s.replaced = list
	return nil
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"john", "john", 0},
		{"john", "jon", 1},
		{"mary", "marie", 2},
		{"alice", "bob", 5},
		{"kitten", "sitting", 3},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, levenshtein(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

func TestFindContactFuzzyMatch(t *testing.T) {
	repo := &stubRepo{contacts: []models.Contact{
		{Name: "John", Phone: "+15550100", Email: "john@example.com"},
		{Name: "Mary", Phone: "+15550101"},
	}}
	svc := &DefaultContactService{Repo: repo}

	// Exact, case-insensitive.
	match, err := svc.FindContact(context.Background(), "u1", "john")
	require.NoError(t, err)
	require.NotNil(t, match)
	require.Equal(t, "John", match.Name)
	require.Equal(t, "john@example.com", match.Email)

	// One edit away.
	match, err = svc.FindContact(context.Background(), "u1", "Jon")
	require.NoError(t, err)
	require.NotNil(t, match)
	require.Equal(t, "John", match.Name)

	// Two edits away, still within the threshold.
	match, err = svc.FindContact(context.Background(), "u1", "Jhn")
	require.NoError(t, err)
	require.NotNil(t, match)
	require.Equal(t, "John", match.Name)
}

func TestFindContactBeyondThreshold(t *testing.T) {
	repo := &stubRepo{contacts: []models.Contact{
		{Name: "John"},
	}}
	svc := &DefaultContactService{Repo: repo}

	match, err := svc.FindContact(context.Background(), "u1", "Alexandra")
	require.NoError(t, err)
	require.Nil(t, match)
}

func TestFindContactPicksClosest(t *testing.T) {
	repo := &stubRepo{contacts: []models.Contact{
		{Name: "Jon"},
		{Name: "John"},
	}}
	svc := &DefaultContactService{Repo: repo}

	match, err := svc.FindContact(context.Background(), "u1", "Jon")
	require.NoError(t, err)
	require.NotNil(t, match)
	require.Equal(t, "Jon", match.Name)
}

func TestFindContactRepoError(t *testing.T) {
	repo := &stubRepo{err: fmt.Errorf("mongo down")}
	svc := &DefaultContactService{Repo: repo}

	_, err := svc.FindContact(context.Background(), "u1", "John")
	require.Error(t, err)
}

func TestSyncContactsFillsIDs(t *testing.T) {
	repo := &stubRepo{}
	svc := &DefaultContactService{Repo: repo}

	err := svc.SyncContacts(context.Background(), "u1", []models.Contact{
		{Name: "John", Phone: "+15550100"},
		{ID: "existing", Name: "Mary"},
	})
	require.NoError(t, err)
	require.Len(t, repo.replaced, 2)
	require.NotEmpty(t, repo.replaced[0].ID)
	require.Equal(t, "existing", repo.replaced[1].ID)
}
