package services_test

import (
	"testing"

	"stackboard/internal/repos"
	"stackboard/internal/services"
)

func TestSearch_SubstringAcrossCollections(t *testing.T) {
	db := memdb(t)
	svc := services.NewSearchService(repos.NewUserRepo(db), repos.NewProductRepo(db), repos.NewTaskRepo(db))

	// "lap" only matches the seeded Laptop product.
	res, err := svc.Run("lap", "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Users == nil || res.Products == nil || res.Tasks == nil {
		t.Fatalf("all collections should be present: %+v", res)
	}
	if len(*res.Products) != 1 || (*res.Products)[0].Name != "Laptop" {
		t.Fatalf("bad product matches: %+v", *res.Products)
	}
	if res.Total() != 1 {
		t.Fatalf("want totalResults 1, got %d", res.Total())
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	db := memdb(t)
	svc := services.NewSearchService(repos.NewUserRepo(db), repos.NewProductRepo(db), repos.NewTaskRepo(db))

	res, err := svc.Run("LAPTOP", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(*res.Products) != 1 {
		t.Fatalf("case-insensitive match failed: %+v", *res.Products)
	}
}

func TestSearch_TypeFilter(t *testing.T) {
	db := memdb(t)
	svc := services.NewSearchService(repos.NewUserRepo(db), repos.NewProductRepo(db), repos.NewTaskRepo(db))

	res, err := svc.Run("john", "users")
	if err != nil {
		t.Fatal(err)
	}
	if res.Products != nil || res.Tasks != nil {
		t.Fatalf("type filter leaked collections: %+v", res)
	}
	// John Doe and Bob Johnson both contain "john" in name or email.
	if len(*res.Users) != 2 {
		t.Fatalf("want 2 user matches, got %+v", *res.Users)
	}
}

func TestSearch_MatchesEmailAndTitle(t *testing.T) {
	db := memdb(t)
	svc := services.NewSearchService(repos.NewUserRepo(db), repos.NewProductRepo(db), repos.NewTaskRepo(db))

	res, err := svc.Run("example.com", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(*res.Users) != 3 {
		t.Fatalf("email search failed: %+v", *res.Users)
	}

	res, err = svc.Run("documentation", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(*res.Tasks) != 1 || res.Total() != 1 {
		t.Fatalf("title search failed: %+v", res)
	}
}
