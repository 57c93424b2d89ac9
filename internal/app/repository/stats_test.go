package repository

import (
	"fmt"
	"testing"

	"storerating/internal/app/ds"
	"storerating/internal/app/role"
)

func TestStoreAverageRating(t *testing.T) {
	repo, ctx := newTestRepo(t)

	store, err := repo.AddStore(ctx, ds.Store{Name: "Average Rating Test Store", Email: "avg@example.com", Address: "X"})
	if err != nil {
		t.Fatalf("AddStore: %v", err)
	}

	avg, err := repo.StoreAverageRating(ctx, store.ID)
	if err != nil {
		t.Fatalf("StoreAverageRating: %v", err)
	}
	if avg != 0 {
		t.Errorf("store without ratings must average 0, got %v", avg)
	}

	for i, value := range []int{3, 4, 5} {
		userID := fmt.Sprintf("user%d", i+2)
		if _, err := repo.AddOrUpdateRating(ctx, userID, store.ID, value); err != nil {
			t.Fatalf("AddOrUpdateRating: %v", err)
		}
	}

	avg, err = repo.StoreAverageRating(ctx, store.ID)
	if err != nil {
		t.Fatalf("StoreAverageRating: %v", err)
	}
	if avg != 4.0 {
		t.Errorf("average of [3 4 5] = %v, want 4.0", avg)
	}
}

func TestStoreAverageRatingRounding(t *testing.T) {
	repo, ctx := newTestRepo(t)

	store, _ := repo.AddStore(ctx, ds.Store{Name: "Rounding Test Store Name Here", Email: "round@example.com", Address: "X"})
	repo.AddOrUpdateRating(ctx, "user2", store.ID, 5)
	repo.AddOrUpdateRating(ctx, "user3", store.ID, 4)
	repo.AddOrUpdateRating(ctx, "user4", store.ID, 4)

	avg, err := repo.StoreAverageRating(ctx, store.ID)
	if err != nil {
		t.Fatalf("StoreAverageRating: %v", err)
	}
	// 13/3 = 4.333... -> 4.3
	if avg != 4.3 {
		t.Errorf("average = %v, want 4.3", avg)
	}
}

func TestAllStoresWithRatings(t *testing.T) {
	repo, ctx := newTestRepo(t)

	rated, _ := repo.AddStore(ctx, ds.Store{Name: "Store With Ratings Attached", Email: "rated@example.com", Address: "X"})
	unrated, _ := repo.AddStore(ctx, ds.Store{Name: "Store Without Any Ratings", Email: "unrated@example.com", Address: "Y"})

	repo.AddOrUpdateRating(ctx, "user2", rated.ID, 5)
	repo.AddOrUpdateRating(ctx, "user3", rated.ID, 3)

	stores, err := repo.AllStoresWithRatings(ctx)
	if err != nil {
		t.Fatalf("AllStoresWithRatings: %v", err)
	}
	if len(stores) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(stores))
	}

	byID := map[string]float64{}
	for _, s := range stores {
		byID[s.ID] = s.Rating
	}
	if byID[rated.ID] != 4.0 {
		t.Errorf("rated store average = %v, want 4.0", byID[rated.ID])
	}
	if byID[unrated.ID] != 0 {
		t.Errorf("unrated store average = %v, want 0", byID[unrated.ID])
	}
}

func TestGetUsersWhoRatedStore(t *testing.T) {
	repo, ctx := newTestRepo(t)

	store, _ := repo.AddStore(ctx, ds.Store{Name: "Raters Join Test Store Name", Email: "raters@example.com", Address: "X"})

	alice, _ := repo.AddUser(ctx, ds.User{Name: "Alice The First Test Rater", Email: "alice@example.com", Role: role.User})
	bob, _ := repo.AddUser(ctx, ds.User{Name: "Robert The Second Test Rater", Email: "bob@example.com", Role: role.User})

	repo.AddOrUpdateRating(ctx, alice.ID, store.ID, 5)
	repo.AddOrUpdateRating(ctx, bob.ID, store.ID, 3)
	// оценка от несуществующего пользователя должна молча пропускаться
	repo.AddOrUpdateRating(ctx, "user999", store.ID, 1)

	raters, err := repo.GetUsersWhoRatedStore(ctx, store.ID)
	if err != nil {
		t.Fatalf("GetUsersWhoRatedStore: %v", err)
	}
	if len(raters) != 2 {
		t.Fatalf("expected 2 resolved raters, got %d", len(raters))
	}

	byID := map[string]StoreRater{}
	for _, rater := range raters {
		byID[rater.ID] = rater
	}
	if byID[alice.ID].Rating != 5 || byID[alice.ID].Name != alice.Name || byID[alice.ID].Email != alice.Email {
		t.Errorf("alice entry malformed: %+v", byID[alice.ID])
	}
	if byID[bob.ID].Rating != 3 {
		t.Errorf("bob entry malformed: %+v", byID[bob.ID])
	}
	if byID[alice.ID].RatedAt.IsZero() {
		t.Error("ratedAt must be set")
	}

	avg, err := repo.StoreAverageRating(ctx, store.ID)
	if err != nil {
		t.Fatalf("StoreAverageRating: %v", err)
	}
	// фантомная оценка все равно участвует в среднем: (5+3+1)/3 = 3.0
	if avg != 3.0 {
		t.Errorf("average = %v, want 3.0", avg)
	}
}

func TestGetDashboardStats(t *testing.T) {
	repo, ctx := newTestRepo(t)

	repo.AddUser(ctx, ds.User{Name: "Normal User Number One Here", Email: "u1@example.com", Role: role.User})
	repo.AddUser(ctx, ds.User{Name: "Normal User Number Two Here", Email: "u2@example.com", Role: role.User})
	repo.CreateStoreWithOwner(ctx, ds.Store{Name: "Dashboard Stats Test Store", Email: "s1@example.com", Address: "X"}, "Owner@123")
	repo.AddOrUpdateRating(ctx, "user2", "store1", 4)

	stats, err := repo.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("GetDashboardStats: %v", err)
	}

	want := DashboardStats{
		TotalUsers:   4, // admin + 2 users + owner
		TotalStores:  1,
		TotalRatings: 1,
		NormalUsers:  2,
		StoreOwners:  1,
		AdminUsers:   1,
	}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}
}

func TestGetStoreWithRating(t *testing.T) {
	repo, ctx := newTestRepo(t)

	store, _ := repo.AddStore(ctx, ds.Store{Name: "Single Store Rating Lookup", Email: "one@example.com", Address: "X"})
	repo.AddOrUpdateRating(ctx, "user2", store.ID, 5)
	repo.AddOrUpdateRating(ctx, "user3", store.ID, 3)

	withRating, err := repo.GetStoreWithRating(ctx, store.ID)
	if err != nil {
		t.Fatalf("GetStoreWithRating: %v", err)
	}
	if withRating == nil || withRating.Rating != 4.0 || withRating.Name != store.Name {
		t.Errorf("got %+v", withRating)
	}

	missing, err := repo.GetStoreWithRating(ctx, "store999")
	if err != nil {
		t.Fatalf("GetStoreWithRating: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing store, got %+v", missing)
	}
}
