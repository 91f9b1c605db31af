package skill

import (
	"errors"
	"testing"

	"tutorlink/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeSkillRepo struct {
	catalog   []models.Skill
	offerings []models.TutorSkill
}

func (r *fakeSkillRepo) ListSkills() ([]models.Skill, error) { return r.catalog, nil }
func (r *fakeSkillRepo) GetSkillByID(id string) (*models.Skill, error) {
	for _, sk := range r.catalog {
		if sk.ID == id {
			copied := sk
			return &copied, nil
		}
	}
	return nil, nil
}
func (r *fakeSkillRepo) CreateTutorSkill(ts *models.TutorSkill) error {
	for _, o := range r.offerings {
		if o.TutorID == ts.TutorID && o.SkillID == ts.SkillID {
			return errors.New("duplicate offering")
		}
	}
	r.offerings = append(r.offerings, *ts)
	return nil
}
func (r *fakeSkillRepo) DeleteTutorSkill(id, tutorID string) error {
	for i, o := range r.offerings {
		if o.ID == id && o.TutorID == tutorID {
			r.offerings = append(r.offerings[:i], r.offerings[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}
func (r *fakeSkillRepo) GetTutorSkillByID(id string) (*models.TutorSkill, error) {
	for _, o := range r.offerings {
		if o.ID == id {
			copied := o
			return &copied, nil
		}
	}
	return nil, nil
}
func (r *fakeSkillRepo) ListByTutor(tutorID string) ([]models.TutorSkill, error) {
	var out []models.TutorSkill
	for _, o := range r.offerings {
		if o.TutorID == tutorID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (r *fakeSkillRepo) ListByTutorIDs(tutorIDs []string) ([]models.TutorSkill, error) {
	return r.offerings, nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func (r *fakeProfileRepo) Create(p *models.Profile) error                  { return errors.New("not implemented") }
func (r *fakeProfileRepo) UpdateSetDocument(id string, doc bson.M) error   { return errors.New("not implemented") }
func (r *fakeProfileRepo) Delete(id string) error                          { return errors.New("not implemented") }
func (r *fakeProfileRepo) GetTutors() ([]models.Profile, error)            { return nil, nil }
func (r *fakeProfileRepo) GetByEmail(email string) (*models.Profile, error) { return nil, nil }
func (r *fakeProfileRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.Profile, error) {
	return nil, nil
}
func (r *fakeProfileRepo) GetByID(id string) (*models.Profile, error) {
	if p, ok := r.profiles[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}
func (r *fakeProfileRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Profile, error) {
	return r.GetByID(id)
}

func newTestService() (*DefaultSkillService, *fakeSkillRepo) {
	repo := &fakeSkillRepo{
		catalog: []models.Skill{
			{ID: "sk-math", Name: "Math", Category: "Academics"},
			{ID: "sk-art", Name: "Art", Category: "Creative"},
		},
	}
	svc := &DefaultSkillService{
		Repo: repo,
		Profiles: &fakeProfileRepo{profiles: map[string]*models.Profile{
			"tutor-1":   {ID: "tutor-1", UserType: models.UserTypeTutor},
			"learner-1": {ID: "learner-1", UserType: models.UserTypeLearner},
		}},
	}
	return svc, repo
}

func TestAddOffering(t *testing.T) {
	svc, repo := newTestService()

	ts, err := svc.AddOffering("tutor-1", OfferingRequest{SkillID: "sk-math", HourlyRate: 120})
	if err != nil {
		t.Fatalf("AddOffering failed: %v", err)
	}
	if ts.ID == "" {
		t.Error("offering should get an id")
	}
	if len(repo.offerings) != 1 {
		t.Errorf("stored offerings = %d, want 1", len(repo.offerings))
	}
}

func TestAddOfferingRejectsDuplicateSubject(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.AddOffering("tutor-1", OfferingRequest{SkillID: "sk-math", HourlyRate: 120}); err != nil {
		t.Fatalf("first offering failed: %v", err)
	}
	_, err := svc.AddOffering("tutor-1", OfferingRequest{SkillID: "sk-math", HourlyRate: 90})
	if err == nil {
		t.Fatal("offering the same subject twice should be rejected")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Errorf("expected *ValidationError, got %T", err)
	}
}

func TestAddOfferingRateBounds(t *testing.T) {
	svc, _ := newTestService()

	for _, rate := range []float64{0, 0.5, 10001, -10} {
		if _, err := svc.AddOffering("tutor-1", OfferingRequest{SkillID: "sk-math", HourlyRate: rate}); err == nil {
			t.Errorf("rate %v should be rejected", rate)
		}
	}
	if _, err := svc.AddOffering("tutor-1", OfferingRequest{SkillID: "sk-math", HourlyRate: 1}); err != nil {
		t.Errorf("rate 1 rejected: %v", err)
	}
	if _, err := svc.AddOffering("tutor-1", OfferingRequest{SkillID: "sk-art", HourlyRate: 10000}); err != nil {
		t.Errorf("rate 10000 rejected: %v", err)
	}
}

func TestAddOfferingRejectsNonTutors(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.AddOffering("learner-1", OfferingRequest{SkillID: "sk-math", HourlyRate: 50}); err == nil {
		t.Error("learners must not offer subjects")
	}
	if _, err := svc.AddOffering("ghost", OfferingRequest{SkillID: "sk-math", HourlyRate: 50}); err == nil {
		t.Error("unknown profiles must not offer subjects")
	}
}

func TestAddOfferingRejectsUnknownSubject(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.AddOffering("tutor-1", OfferingRequest{SkillID: "sk-quantum", HourlyRate: 50}); err == nil {
		t.Error("subjects outside the catalog should be rejected")
	}
}

func TestRemoveOfferingScopedToOwner(t *testing.T) {
	svc, repo := newTestService()

	ts, err := svc.AddOffering("tutor-1", OfferingRequest{SkillID: "sk-math", HourlyRate: 120})
	if err != nil {
		t.Fatalf("AddOffering failed: %v", err)
	}

	err = svc.RemoveOffering("someone-else", ts.ID)
	if err == nil {
		t.Error("removing another tutor's offering should fail")
	}
	if _, ok := err.(*NotFoundError); !ok {
		t.Errorf("foreign offering: expected *NotFoundError, got %T", err)
	}
	if len(repo.offerings) != 1 {
		t.Errorf("foreign removal must not delete, have %d offerings", len(repo.offerings))
	}

	err = svc.RemoveOffering("tutor-1", "no-such-offering")
	if _, ok := err.(*NotFoundError); !ok {
		t.Errorf("unknown offering: expected *NotFoundError, got %T", err)
	}

	if err := svc.RemoveOffering("tutor-1", ts.ID); err != nil {
		t.Errorf("owner removal failed: %v", err)
	}
	if len(repo.offerings) != 0 {
		t.Errorf("offering should be gone, still have %d", len(repo.offerings))
	}
}
