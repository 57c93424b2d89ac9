package repository

import (
	"context"
	"strings"
	"testing"

	"storerating/internal/app/ds"
	"storerating/internal/app/kvstore"
	"storerating/internal/app/role"
)

func newTestRepo(t *testing.T) (*Repository, context.Context) {
	t.Helper()
	repo := New(kvstore.NewMemoryStore())
	ctx := context.Background()
	if err := repo.InitData(ctx); err != nil {
		t.Fatalf("InitData: %v", err)
	}
	return repo, ctx
}

func TestInitData(t *testing.T) {
	repo, ctx := newTestRepo(t)

	users, err := repo.GetUsers(ctx)
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if len(users) != 1 || users[0].ID != "admin1" || users[0].Role != role.Admin {
		t.Fatalf("expected single seed admin, got %+v", users)
	}

	stores, err := repo.GetStores(ctx)
	if err != nil {
		t.Fatalf("GetStores: %v", err)
	}
	if len(stores) != 0 {
		t.Errorf("stores must start empty, got %d", len(stores))
	}

	ratings, err := repo.GetRatings(ctx)
	if err != nil {
		t.Fatalf("GetRatings: %v", err)
	}
	if len(ratings) != 0 {
		t.Errorf("ratings must start empty, got %d", len(ratings))
	}
}

func TestInitDataIdempotent(t *testing.T) {
	repo, ctx := newTestRepo(t)

	if _, err := repo.AddUser(ctx, ds.User{Name: "Somebody", Email: "x@y.com", Role: role.User}); err != nil {
		t.Fatalf("AddUser: %v", err)
	}

	// повторная инициализация не должна затирать данные
	if err := repo.InitData(ctx); err != nil {
		t.Fatalf("second InitData: %v", err)
	}

	users, err := repo.GetUsers(ctx)
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users after reseed attempt, got %d", len(users))
	}
}

func TestAddUserSequentialIDs(t *testing.T) {
	repo, ctx := newTestRepo(t)

	first, err := repo.AddUser(ctx, ds.User{Name: "First", Email: "first@example.com", Role: role.User})
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if first.ID != "user2" {
		t.Errorf("first created user id = %q, want user2", first.ID)
	}

	second, err := repo.AddUser(ctx, ds.User{Name: "Second", Email: "second@example.com", Role: role.User})
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if second.ID != "user3" {
		t.Errorf("second created user id = %q, want user3", second.ID)
	}
}

func TestUserRoundTrip(t *testing.T) {
	repo, ctx := newTestRepo(t)

	draft := ds.User{
		Name:     "Round Trip Test Person Name",
		Email:    "roundtrip@example.com",
		Address:  "42 Round Trip Street",
		Password: "Secret@123",
		Role:     role.User,
	}
	created, err := repo.AddUser(ctx, draft)
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}

	found, err := repo.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if found == nil {
		t.Fatal("created user not found")
	}
	if *found != *created {
		t.Errorf("round trip mismatch: %+v != %+v", *found, *created)
	}

	byEmail, err := repo.GetUserByEmail(ctx, draft.Email)
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if byEmail == nil || byEmail.ID != created.ID {
		t.Errorf("lookup by email returned %+v", byEmail)
	}
}

func TestLookupMissIsNotAnError(t *testing.T) {
	repo, ctx := newTestRepo(t)

	user, err := repo.GetUserByID(ctx, "user999")
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil for missing user, got %+v", user)
	}

	store, err := repo.GetStoreByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetStoreByEmail: %v", err)
	}
	if store != nil {
		t.Errorf("expected nil for missing store, got %+v", store)
	}
}

func TestUpdateUserPatch(t *testing.T) {
	repo, ctx := newTestRepo(t)

	created, err := repo.AddUser(ctx, ds.User{
		Name:     "Patch Target User Full Name",
		Email:    "patch@example.com",
		Address:  "Old address",
		Password: "Secret@123",
		Role:     role.User,
	})
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}

	newAddress := "New address"
	updated, err := repo.UpdateUser(ctx, ds.UserPatch{ID: created.ID, Address: &newAddress})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated == nil {
		t.Fatal("UpdateUser returned nil for existing user")
	}
	if updated.Address != newAddress {
		t.Errorf("address not updated: %q", updated.Address)
	}
	if updated.Name != created.Name || updated.Email != created.Email || updated.Password != created.Password {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	missing, err := repo.UpdateUser(ctx, ds.UserPatch{ID: "user999", Address: &newAddress})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing user, got %+v", missing)
	}
}

func TestUpdatePassword(t *testing.T) {
	repo, ctx := newTestRepo(t)

	ok, err := repo.UpdatePassword(ctx, "admin1", "Changed@123")
	if err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	if !ok {
		t.Fatal("UpdatePassword returned false for existing user")
	}

	admin, err := repo.GetUserByID(ctx, "admin1")
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if admin.Password != "Changed@123" {
		t.Errorf("password not persisted: %q", admin.Password)
	}

	ok, err = repo.UpdatePassword(ctx, "user999", "Whatever@1")
	if err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	if ok {
		t.Error("UpdatePassword returned true for missing user")
	}
}

func TestAddStoreAssignsID(t *testing.T) {
	repo, ctx := newTestRepo(t)

	draft := ds.Store{Name: strings.Repeat("A", 25), Email: "a@b.com", Address: "X"}
	created, err := repo.AddStore(ctx, draft)
	if err != nil {
		t.Fatalf("AddStore: %v", err)
	}
	if created.ID != "store1" {
		t.Errorf("first store id = %q, want store1", created.ID)
	}

	found, err := repo.GetStoreByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("GetStoreByEmail: %v", err)
	}
	if found == nil {
		t.Fatal("created store not found by email")
	}
	if found.Name != draft.Name || found.Email != draft.Email || found.Address != draft.Address {
		t.Errorf("store fields changed on write: %+v", found)
	}
}

func TestCreateStoreWithOwner(t *testing.T) {
	repo, ctx := newTestRepo(t)

	store, owner, err := repo.CreateStoreWithOwner(ctx, ds.Store{
		Name:    "Neighborhood Grocery Store One",
		Email:   "grocery@example.com",
		Address: "1 Market Square",
	}, "Owner@123")
	if err != nil {
		t.Fatalf("CreateStoreWithOwner: %v", err)
	}

	if store.ID != "store1" {
		t.Errorf("store id = %q, want store1", store.ID)
	}
	if owner.ID != "user2" {
		t.Errorf("owner id = %q, want user2", owner.ID)
	}
	if owner.Role != role.StoreOwner {
		t.Errorf("owner role = %q, want store", owner.Role)
	}
	if owner.Email != store.Email || owner.Name != store.Name || owner.Address != store.Address {
		t.Errorf("owner must mirror store fields: %+v vs %+v", owner, store)
	}
	if owner.Password != "Owner@123" {
		t.Errorf("owner password = %q", owner.Password)
	}

	// оба видны через обычные выборки
	if found, _ := repo.GetStoreByEmail(ctx, "grocery@example.com"); found == nil {
		t.Error("store not persisted")
	}
	if found, _ := repo.GetUserByEmail(ctx, "grocery@example.com"); found == nil {
		t.Error("owner user not persisted")
	}
}

func TestAddOrUpdateRatingUpsert(t *testing.T) {
	repo, ctx := newTestRepo(t)

	first, err := repo.AddOrUpdateRating(ctx, "user2", "store1", 4)
	if err != nil {
		t.Fatalf("AddOrUpdateRating: %v", err)
	}
	if first.Rating != 4 || first.CreatedAt.IsZero() || !first.CreatedAt.Equal(first.UpdatedAt) {
		t.Errorf("fresh rating malformed: %+v", first)
	}

	second, err := repo.AddOrUpdateRating(ctx, "user2", "store1", 5)
	if err != nil {
		t.Fatalf("AddOrUpdateRating: %v", err)
	}
	if second.Rating != 5 {
		t.Errorf("rating not updated: %+v", second)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("createdAt must be preserved on update: %v != %v", second.CreatedAt, first.CreatedAt)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Errorf("updatedAt must not go backwards")
	}

	ratings, err := repo.GetRatings(ctx)
	if err != nil {
		t.Fatalf("GetRatings: %v", err)
	}
	if len(ratings) != 1 {
		t.Fatalf("upsert must keep one record per (user, store), got %d", len(ratings))
	}

	// другая пара — отдельная запись
	if _, err := repo.AddOrUpdateRating(ctx, "user3", "store1", 3); err != nil {
		t.Fatalf("AddOrUpdateRating: %v", err)
	}
	ratings, _ = repo.GetRatings(ctx)
	if len(ratings) != 2 {
		t.Fatalf("expected 2 records, got %d", len(ratings))
	}
}

func TestGetRatingByUserAndStore(t *testing.T) {
	repo, ctx := newTestRepo(t)

	if _, err := repo.AddOrUpdateRating(ctx, "user2", "store1", 2); err != nil {
		t.Fatalf("AddOrUpdateRating: %v", err)
	}

	rating, err := repo.GetRatingByUserAndStore(ctx, "user2", "store1")
	if err != nil {
		t.Fatalf("GetRatingByUserAndStore: %v", err)
	}
	if rating == nil || rating.Rating != 2 {
		t.Errorf("got %+v", rating)
	}

	miss, err := repo.GetRatingByUserAndStore(ctx, "user2", "store2")
	if err != nil {
		t.Fatalf("GetRatingByUserAndStore: %v", err)
	}
	if miss != nil {
		t.Errorf("expected nil for missing pair, got %+v", miss)
	}
}

func TestCorruptedCollectionFailsFast(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := New(store)
	ctx := context.Background()

	if err := store.Put(ctx, kvstore.KeyUsers, []byte("{not json")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if _, err := repo.GetUsers(ctx); err == nil {
		t.Fatal("corrupted users slot must be an error, not an empty collection")
	}
}
