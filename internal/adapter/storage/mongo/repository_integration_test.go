//go:build integration

package mongo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/seu-repo/medsys/internal/domain"
)

// setupDB connects to MONGODB_URI when set (CI), otherwise starts a
// disposable MongoDB container. Each test gets its own database.
func setupDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()
	logger, _ := zap.NewDevelopment()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		container, err := mongodb.Run(ctx, "mongo:7")
		require.NoError(t, err, "start mongodb container")
		t.Cleanup(func() { _ = container.Terminate(context.Background()) })

		uri, err = container.ConnectionString(ctx)
		require.NoError(t, err)
	}

	dbName := "medsys_test_" + bson.NewObjectID().Hex()
	db, err := NewConnection(ctx, uri, dbName, logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Database.Drop(context.Background())
		_ = db.Close(context.Background())
	})

	require.NoError(t, db.EnsureIndexes(ctx))
	return db
}

func insertDoctors(t *testing.T, db *DB, doctors ...domain.Doctor) {
	t.Helper()
	docs := make([]interface{}, 0, len(doctors))
	for _, d := range doctors {
		docs = append(docs, d)
	}
	_, err := db.collection(CollectionDoctors).InsertMany(context.Background(), docs)
	require.NoError(t, err)
}

func TestPatientRepository_SaveAndFindByCPF(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewPatientRepository(db, db.log)

	ana := &domain.Patient{
		Name:         "Ana Silva",
		CPF:          "12345678901",
		BirthDate:    time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
		Active:       true,
		RegisteredAt: time.Now(),
	}
	require.NoError(t, repo.Save(ctx, ana))
	assert.False(t, ana.ID.IsZero())

	found, err := repo.FindByCPF(ctx, "12345678901")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ana Silva", found.Name)
	assert.Equal(t, ana.ID, found.ID)
	assert.Nil(t, found.Email)
	assert.Nil(t, found.Address)

	missing, err := repo.FindByCPF(ctx, "00000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPatientRepository_DuplicateCPF(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewPatientRepository(db, db.log)

	require.NoError(t, repo.Save(ctx, &domain.Patient{Name: "Carlos", CPF: "12345678901", Active: true}))
	err := repo.Save(ctx, &domain.Patient{Name: "Outro", CPF: "12345678901", Active: true})

	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestPatientRepository_CountActiveAndSort(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewPatientRepository(db, db.log)

	require.NoError(t, repo.Save(ctx, &domain.Patient{Name: "Fernanda Lima", CPF: "98765432109", Active: true}))
	require.NoError(t, repo.Save(ctx, &domain.Patient{Name: "Carlos Oliveira", CPF: "12345678901", Active: true}))
	require.NoError(t, repo.Save(ctx, &domain.Patient{Name: "Bruno Inativo", CPF: "11111111111", Active: false}))

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Bruno Inativo", all[0].Name)
	assert.Equal(t, "Carlos Oliveira", all[1].Name)
	assert.Equal(t, "Fernanda Lima", all[2].Name)
}

func TestDoctorRepository_FindActiveBySpecialty(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewDoctorRepository(db, db.log)

	insertDoctors(t, db,
		domain.Doctor{Name: "Dr. João Silva", CRM: "12345-SP", Specialty: "Cardiologia", Active: true},
		domain.Doctor{Name: "Dra. Paula Reis", CRM: "22222-SP", Specialty: "Cardiologia", Active: true},
		domain.Doctor{Name: "Dr. Inativo", CRM: "33333-SP", Specialty: "Cardiologia", Active: false},
		domain.Doctor{Name: "Dra. Maria Santos", CRM: "67890-SP", Specialty: "Pediatria", Active: true},
	)

	cardio, err := repo.FindActive(ctx, "Cardiologia")
	require.NoError(t, err)
	assert.Len(t, cardio, 2)
	for _, d := range cardio {
		assert.True(t, d.Active)
		assert.Equal(t, "Cardiologia", d.Specialty)
	}

	all, err := repo.FindActive(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), active)

	bySpecialty, err := repo.CountBySpecialty(ctx)
	require.NoError(t, err)
	totals := map[string]int{}
	for _, c := range bySpecialty {
		totals[c.Specialty] = c.Total
	}
	assert.Equal(t, map[string]int{"Cardiologia": 3, "Pediatria": 1}, totals)

	doctor, err := repo.FindByCRM(ctx, "67890-SP")
	require.NoError(t, err)
	require.NotNil(t, doctor)
	assert.Equal(t, "Dra. Maria Santos", doctor.Name)

	none, err := repo.FindByCRM(ctx, "00000-XX")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestAppointmentRepository_LegacyTextDate(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewAppointmentRepository(db, db.log)

	when := time.Date(2025, time.December, 10, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, &domain.Appointment{
		PatientID:   bson.NewObjectID(),
		DoctorID:    bson.NewObjectID(),
		ScheduledAt: when,
		Status:      domain.AppointmentStatusScheduled,
		Fee:         250,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}))
	_, err := db.collection(CollectionAppointments).InsertOne(ctx, bson.D{
		{Key: "pacienteId", Value: bson.NewObjectID()},
		{Key: "medicoId", Value: bson.NewObjectID()},
		{Key: "dataHora", Value: "2025-12-08 14:30:00"},
		{Key: "status", Value: "confirmada"},
	})
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	var dated, legacy domain.Appointment
	for _, a := range all {
		if a.HasSchedule() {
			dated = a
		} else {
			legacy = a
		}
	}
	assert.True(t, dated.ScheduledAt.Equal(when))
	assert.Equal(t, "2025-12-08 14:30:00", legacy.ScheduledAtText)

	scheduled, err := repo.CountByStatus(ctx, domain.AppointmentStatusScheduled)
	require.NoError(t, err)
	assert.Equal(t, int64(1), scheduled)
}

func TestSeedDoctors_OnlyWhenEmpty(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	inserted, err := db.SeedDoctors(ctx, SampleDoctors(time.Now()))
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = db.SeedDoctors(ctx, SampleDoctors(time.Now()))
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestMissingCollections(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	missing, err := db.MissingCollections(ctx)
	require.NoError(t, err)
	assert.Empty(t, missing, "index bootstrap creates every collection")

	require.NoError(t, db.collection(CollectionAppointments).Drop(ctx))

	missing, err = db.MissingCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{CollectionAppointments}, missing)
}
