package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hmpssainta/sainta/core/member"
)

func TestOpenSeedsCollections(t *testing.T) {
	db, err := Open()
	assert.NoError(t, err)

	members, _ := NewMemberRepository(db).QueryAllMembers()
	assert.Len(t, members, 8)

	items, _ := NewAgendaRepository(db).QueryAllItems()
	assert.Len(t, items, 4)

	photos, _ := NewGalleryRepository(db).QueryAllPhotos()
	assert.Len(t, photos, 1)

	videos, _ := NewVideoRepository(db).QueryAllVideos()
	assert.Len(t, videos, 1)

	outcomeRepo := NewOutcomeRepository(db)
	outcomes, _ := outcomeRepo.QueryAllOutcomes()
	assert.Len(t, outcomes, 3)
	courses, _ := outcomeRepo.QueryAllCourses()
	assert.Len(t, courses, 16)

	docs, _ := NewDocumentRepository(db).QueryAllDocuments()
	assert.Len(t, docs, 1)

	achievements, _ := NewAchievementRepository(db).QueryAllAchievements()
	assert.Len(t, achievements, 1)

	orgRepo := NewOrgRepository(db)
	profile, _ := orgRepo.GetProfile()
	assert.Equal(t, "HMPS Sains Data UIN K.H. Abdurrahman Wahid", profile.NamaOrganisasi)
	structure, _ := orgRepo.QueryStructure()
	assert.Len(t, structure, 26)
	contact, _ := orgRepo.GetContact()
	assert.Equal(t, "hmpssainta@gmail.com", contact.Email)
}

func TestMemberRepository_FilterMembers(t *testing.T) {
	db, _ := Open()
	repo := NewMemberRepository(db)

	tests := []struct {
		name   string
		filter member.QueryFilter
		want   int
	}{
		{"divisi BPH", member.QueryFilter{Divisi: member.DivisiBPH}, 6},
		{"divisi all passes everything", member.QueryFilter{Divisi: "all"}, 8},
		{"search matches name case-insensitively", member.QueryFilter{Search: "fitri"}, 1},
		{"search matches nim substring", member.QueryFilter{Search: "2021008"}, 1},
		{"search and divisi combine", member.QueryFilter{Search: "devi", Divisi: member.DivisiBPH}, 2},
		{"no match", member.QueryFilter{Search: "nope"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FilterMembers(tt.filter)
			assert.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestMemberRepository_FilterLeavesRowsUntouched(t *testing.T) {
	db, _ := Open()
	repo := NewMemberRepository(db)

	filter := member.QueryFilter{Divisi: member.DivisiPSDI}
	first, _ := repo.FilterMembers(filter)
	second, _ := repo.FilterMembers(filter)
	assert.Equal(t, first, second)

	all, _ := repo.QueryAllMembers()
	assert.Len(t, all, 8)
}

func TestMemberRepository_CreateAssignsUniqueIDs(t *testing.T) {
	db, _ := Open()
	repo := NewMemberRepository(db)

	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		m, err := repo.CreateMember(member.Member{Nama: "Anggota Baru", NIM: "2025001", Divisi: member.DivisiRiset})
		assert.NoError(t, err)
		assert.False(t, seen[m.ID], "id %d reused", m.ID)
		seen[m.ID] = true
	}

	all, _ := repo.QueryAllMembers()
	assert.Len(t, all, 13)
	assert.Equal(t, "Anggota Baru", all[len(all)-1].Nama)
}
