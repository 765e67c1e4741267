package service

import (
	"reflect"
	"testing"
)

func sess(id int64, day string, start, end float64, cap int) Session {
	return Session{ID: id, Day: day, Start: start, End: end, Location: "Lab A", Capacity: cap}
}

func TestReconcileCreateOnly(t *testing.T) {
	old := []Session{}
	new := []Session{sess(0, "Monday", 10, 12, 3), sess(0, "Tuesday", 14, 15, 2)}

	diff := Reconcile(old, new)

	if len(diff.Creates) != 2 {
		t.Fatalf("creates = %d, mau 2", len(diff.Creates))
	}
	if len(diff.Updates) != 0 || len(diff.DeleteIDs) != 0 {
		t.Fatalf("updates/deletes harus kosong: %+v", diff)
	}
	if diff.Creates[0].Day != "Monday" || diff.Creates[1].Day != "Tuesday" {
		t.Fatalf("urutan create harus ikut daftar baru: %+v", diff.Creates)
	}
}

func TestReconcileUpdateAlwaysEmitted(t *testing.T) {
	old := []Session{sess(1, "Monday", 10, 12, 3)}
	// identik dengan yang lama: tetap harus jadi update (idempoten, bukan no-op)
	new := []Session{sess(1, "Monday", 10, 12, 3)}

	diff := Reconcile(old, new)

	if len(diff.Updates) != 1 || diff.Updates[0].ID != 1 {
		t.Fatalf("sesi identik tetap harus diemit sebagai update: %+v", diff)
	}
	if len(diff.Creates) != 0 || len(diff.DeleteIDs) != 0 {
		t.Fatalf("tidak boleh ada create/delete: %+v", diff)
	}
}

func TestReconcileDeleteOnly(t *testing.T) {
	old := []Session{sess(1, "Monday", 10, 12, 3), sess(2, "Friday", 8, 9, 1)}
	new := []Session{}

	diff := Reconcile(old, new)

	if !reflect.DeepEqual(diff.DeleteIDs, []int64{1, 2}) {
		t.Fatalf("delete ids = %v, mau [1 2]", diff.DeleteIDs)
	}
	if len(diff.Creates) != 0 || len(diff.Updates) != 0 {
		t.Fatalf("tidak boleh ada create/update: %+v", diff)
	}
}

func TestReconcileMixed(t *testing.T) {
	old := []Session{
		sess(1, "Monday", 10, 12, 3),
		sess(2, "Tuesday", 9, 10, 2),
		sess(3, "Friday", 14, 16, 5),
	}
	new := []Session{
		sess(2, "Wednesday", 11, 12.5, 4), // update: semua field boleh berubah
		sess(0, "Thursday", 8, 9.5, 1),    // create
		sess(3, "Friday", 14, 16, 5),      // update identik
	}

	diff := Reconcile(old, new)

	if len(diff.Creates) != 1 || diff.Creates[0].Day != "Thursday" {
		t.Fatalf("creates = %+v", diff.Creates)
	}
	if len(diff.Updates) != 2 || diff.Updates[0].ID != 2 || diff.Updates[1].ID != 3 {
		t.Fatalf("updates = %+v", diff.Updates)
	}
	if !reflect.DeepEqual(diff.DeleteIDs, []int64{1}) {
		t.Fatalf("delete ids = %v, mau [1]", diff.DeleteIDs)
	}
	if diff.Updates[0].Day != "Wednesday" || diff.Updates[0].Capacity != 4 {
		t.Fatalf("update harus bawa semua field baru: %+v", diff.Updates[0])
	}
}

func TestReconcilePendingOldNeverMatches(t *testing.T) {
	// sesi pending (ID 0) di daftar lama tidak pernah bisa di-match
	old := []Session{sess(0, "Monday", 10, 11, 2)}
	new := []Session{sess(0, "Monday", 10, 11, 2)}

	diff := Reconcile(old, new)

	if len(diff.Creates) != 1 {
		t.Fatalf("sesi baru ID 0 harus jadi create: %+v", diff)
	}
	if len(diff.DeleteIDs) != 0 {
		t.Fatalf("pending lama tidak menghasilkan delete (belum tersimpan): %v", diff.DeleteIDs)
	}
}

func TestReconcileEmptyBothIsEmpty(t *testing.T) {
	diff := Reconcile(nil, nil)
	if !diff.IsEmpty() {
		t.Fatalf("diff kosong, dapat %+v", diff)
	}
}
