package memory

import (
	"github.com/hmpssainta/sainta/core/achievement"
	"github.com/hmpssainta/sainta/core/agenda"
	"github.com/hmpssainta/sainta/core/document"
	"github.com/hmpssainta/sainta/core/gallery"
	"github.com/hmpssainta/sainta/core/member"
	"github.com/hmpssainta/sainta/core/org"
	"github.com/hmpssainta/sainta/core/outcome"
	"github.com/hmpssainta/sainta/core/video"
)

// Members

type memberRepository struct {
	db *DB
}

var _ member.Repository = (*memberRepository)(nil)

func NewMemberRepository(db *DB) member.Repository {
	return &memberRepository{db: db}
}

func (repo *memberRepository) CreateMember(m member.Member) (member.Member, error) {
	m.ID = repo.db.nextID()
	return repo.db.members.insert(m), nil
}

func (repo *memberRepository) QueryAllMembers() ([]member.Member, error) {
	return repo.db.members.all(), nil
}

func (repo *memberRepository) FilterMembers(filter member.QueryFilter) ([]member.Member, error) {
	return repo.db.members.where(filter.Match), nil
}

// Agenda

type agendaRepository struct {
	db *DB
}

var _ agenda.Repository = (*agendaRepository)(nil)

func NewAgendaRepository(db *DB) agenda.Repository {
	return &agendaRepository{db: db}
}

func (repo *agendaRepository) CreateItem(it agenda.Item) (agenda.Item, error) {
	it.ID = repo.db.nextID()
	return repo.db.agenda.insert(it), nil
}

func (repo *agendaRepository) QueryAllItems() ([]agenda.Item, error) {
	return repo.db.agenda.all(), nil
}

func (repo *agendaRepository) FilterItems(filter agenda.QueryFilter) ([]agenda.Item, error) {
	return repo.db.agenda.where(filter.Match), nil
}

// Gallery

type galleryRepository struct {
	db *DB
}

var _ gallery.Repository = (*galleryRepository)(nil)

func NewGalleryRepository(db *DB) gallery.Repository {
	return &galleryRepository{db: db}
}

func (repo *galleryRepository) CreatePhoto(p gallery.Photo) (gallery.Photo, error) {
	p.ID = repo.db.nextID()
	return repo.db.photos.insert(p), nil
}

func (repo *galleryRepository) QueryAllPhotos() ([]gallery.Photo, error) {
	return repo.db.photos.all(), nil
}

func (repo *galleryRepository) FilterPhotos(filter gallery.QueryFilter) ([]gallery.Photo, error) {
	return repo.db.photos.where(filter.Match), nil
}

// Videos

type videoRepository struct {
	db *DB
}

var _ video.Repository = (*videoRepository)(nil)

func NewVideoRepository(db *DB) video.Repository {
	return &videoRepository{db: db}
}

func (repo *videoRepository) CreateVideo(v video.Video) (video.Video, error) {
	v.ID = repo.db.nextID()
	return repo.db.videos.insert(v), nil
}

func (repo *videoRepository) QueryAllVideos() ([]video.Video, error) {
	return repo.db.videos.all(), nil
}

// Outcomes

type outcomeRepository struct {
	db *DB
}

var _ outcome.Repository = (*outcomeRepository)(nil)

func NewOutcomeRepository(db *DB) outcome.Repository {
	return &outcomeRepository{db: db}
}

func (repo *outcomeRepository) CreateOutcome(o outcome.Outcome) (outcome.Outcome, error) {
	o.ID = repo.db.nextID()
	return repo.db.outcomes.insert(o), nil
}

func (repo *outcomeRepository) QueryAllOutcomes() ([]outcome.Outcome, error) {
	return repo.db.outcomes.all(), nil
}

func (repo *outcomeRepository) FilterOutcomes(filter outcome.QueryFilter) ([]outcome.Outcome, error) {
	return repo.db.outcomes.where(filter.Match), nil
}

func (repo *outcomeRepository) QueryAllCourses() ([]outcome.Course, error) {
	return repo.db.courses.all(), nil
}

// Documents

type documentRepository struct {
	db *DB
}

var _ document.Repository = (*documentRepository)(nil)

func NewDocumentRepository(db *DB) document.Repository {
	return &documentRepository{db: db}
}

func (repo *documentRepository) CreateDocument(d document.Document) (document.Document, error) {
	d.ID = repo.db.nextID()
	return repo.db.documents.insert(d), nil
}

func (repo *documentRepository) QueryAllDocuments() ([]document.Document, error) {
	return repo.db.documents.all(), nil
}

// Achievements

type achievementRepository struct {
	db *DB
}

var _ achievement.Repository = (*achievementRepository)(nil)

func NewAchievementRepository(db *DB) achievement.Repository {
	return &achievementRepository{db: db}
}

func (repo *achievementRepository) CreateAchievement(a achievement.Achievement) (achievement.Achievement, error) {
	a.ID = repo.db.nextID()
	return repo.db.achievements.insert(a), nil
}

func (repo *achievementRepository) QueryAllAchievements() ([]achievement.Achievement, error) {
	return repo.db.achievements.all(), nil
}

// Organization profile (singleton)

type orgRepository struct {
	db *DB
}

var _ org.Repository = (*orgRepository)(nil)

func NewOrgRepository(db *DB) org.Repository {
	return &orgRepository{db: db}
}

func (repo *orgRepository) GetProfile() (org.Profile, error) {
	repo.db.profileMu.RLock()
	defer repo.db.profileMu.RUnlock()
	return repo.db.profile, nil
}

func (repo *orgRepository) UpdateProfile(p org.Profile) (org.Profile, error) {
	repo.db.profileMu.Lock()
	defer repo.db.profileMu.Unlock()
	repo.db.profile = p
	return repo.db.profile, nil
}

func (repo *orgRepository) QueryStructure() ([]org.Position, error) {
	repo.db.profileMu.RLock()
	defer repo.db.profileMu.RUnlock()
	out := make([]org.Position, len(repo.db.structure))
	copy(out, repo.db.structure)
	return out, nil
}

func (repo *orgRepository) GetContact() (org.Contact, error) {
	repo.db.profileMu.RLock()
	defer repo.db.profileMu.RUnlock()
	return repo.db.contact, nil
}
