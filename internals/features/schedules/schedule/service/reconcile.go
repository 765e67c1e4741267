package service

// ScheduleDiff adalah rencana perubahan hasil membandingkan dua daftar sesi.
// Urutan eksekusi: Creates dan Updates dulu (urutan daftar baru), baru DeleteIDs.
type ScheduleDiff struct {
	Creates   []Session
	Updates   []Session
	DeleteIDs []int64
}

// IsEmpty true kalau tidak ada perubahan sama sekali.
func (d ScheduleDiff) IsEmpty() bool {
	return len(d.Creates) == 0 && len(d.Updates) == 0 && len(d.DeleteIDs) == 0
}

// Reconcile bandingkan daftar sesi lama (persisted) dengan daftar baru
// (hasil edit) dan hasilkan rencana create/update/delete. Fungsi murni,
// tidak menyentuh store.
//
// Identitas sesi HANYA lewat ID numerik:
//   - sesi baru tanpa padanan ID di daftar lama => create
//   - ID cocok => update SEMUA field mutable, selalu diemit walau identik
//     (idempoten, bukan no-op)
//   - sesi lama yang hilang dari daftar baru => delete (roster ikut
//     dibersihkan oleh store)
//
// Sesi pending (ID == 0) di daftar lama tidak pernah bisa di-match, jadi
// selalu berakhir sebagai delete.
func Reconcile(old, new []Session) ScheduleDiff {
	oldByID := make(map[int64]Session, len(old))
	for _, s := range old {
		if s.ID != 0 {
			oldByID[s.ID] = s
		}
	}

	var diff ScheduleDiff
	matched := make(map[int64]bool, len(new))

	for _, s := range new {
		if _, ok := oldByID[s.ID]; s.ID != 0 && ok {
			diff.Updates = append(diff.Updates, s)
			matched[s.ID] = true
		} else {
			diff.Creates = append(diff.Creates, s)
		}
	}

	for _, s := range old {
		if s.ID == 0 || !matched[s.ID] {
			if s.ID != 0 {
				diff.DeleteIDs = append(diff.DeleteIDs, s.ID)
			}
		}
	}

	return diff
}
