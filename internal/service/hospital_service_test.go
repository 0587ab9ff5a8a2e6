package service

import (
	"testing"

	"smart-healthcare-backend/internal/apperror"
	"smart-healthcare-backend/internal/models"
)

func newHospitalService() (*HospitalService, *mockHospitalStore, *mockDoctorStore) {
	hospitals := newMockHospitalStore()
	doctors := newMockDoctorStore()
	svc := NewHospitalService(hospitals, doctors, &mockAuditLogger{})
	return svc, hospitals, doctors
}

func TestCreateHospitalAssignsID(t *testing.T) {
	svc, _, _ := newHospitalService()

	saved, err := svc.CreateHospital(&models.Hospital{
		Name: "General", Location: "Downtown", TotalBeds: 100, AvailableBeds: 40,
	}, 1)
	if err != nil {
		t.Fatalf("CreateHospital: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected an assigned ID")
	}
}

func TestCreateHospitalRejectsInvalidBeds(t *testing.T) {
	svc, hospitals, _ := newHospitalService()

	cases := []struct {
		name     string
		hospital models.Hospital
	}{
		{"negative total", models.Hospital{Name: "A", Location: "x", TotalBeds: -1}},
		{"negative available", models.Hospital{Name: "B", Location: "x", AvailableBeds: -2}},
		{"available exceeds total", models.Hospital{Name: "C", Location: "x", TotalBeds: 5, AvailableBeds: 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateHospital(&tc.hospital, 1)
			if !apperror.IsInvalidInput(err) {
				t.Errorf("expected InvalidInput, got %v", err)
			}
		})
	}
	if len(hospitals.hospitals) != 0 {
		t.Errorf("no hospital should have been persisted, got %d", len(hospitals.hospitals))
	}
}

func TestCreateHospitalsValidatesEveryRowBeforeInsert(t *testing.T) {
	svc, hospitals, _ := newHospitalService()

	batch := []models.Hospital{
		{Name: "OK", Location: "x", TotalBeds: 10, AvailableBeds: 5},
		{Name: "Bad", Location: "y", TotalBeds: 2, AvailableBeds: 9},
	}
	_, err := svc.CreateHospitals(batch, 1)
	if !apperror.IsInvalidInput(err) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
	if len(hospitals.hospitals) != 0 {
		t.Error("batch with an invalid row must not persist anything")
	}
}

func TestCreateHospitalsBatch(t *testing.T) {
	svc, _, _ := newHospitalService()

	saved, err := svc.CreateHospitals([]models.Hospital{
		{Name: "North", Location: "n", TotalBeds: 20, AvailableBeds: 20},
		{Name: "South", Location: "s", TotalBeds: 30, AvailableBeds: 10},
	}, 1)
	if err != nil {
		t.Fatalf("CreateHospitals: %v", err)
	}
	if len(saved) != 2 || saved[0].ID == 0 || saved[1].ID == 0 {
		t.Errorf("expected 2 saved hospitals with IDs, got %+v", saved)
	}
}

func TestUpdateHospitalReplacesAllFields(t *testing.T) {
	svc, _, _ := newHospitalService()

	saved, _ := svc.CreateHospital(&models.Hospital{
		Name: "Old", Location: "old town", Latitude: 1, Longitude: 2, TotalBeds: 10, AvailableBeds: 5,
	}, 1)

	updated, err := svc.UpdateHospital(saved.ID, &models.Hospital{
		Name: "New", Location: "new town", Latitude: 3, Longitude: 4, TotalBeds: 20, AvailableBeds: 0,
	}, 1)
	if err != nil {
		t.Fatalf("UpdateHospital: %v", err)
	}
	if updated.ID != saved.ID {
		t.Errorf("ID must be immutable, got %d want %d", updated.ID, saved.ID)
	}
	if updated.Name != "New" || updated.Location != "new town" || updated.TotalBeds != 20 || updated.AvailableBeds != 0 {
		t.Errorf("fields not fully replaced: %+v", updated)
	}
}

func TestUpdateHospitalNotFound(t *testing.T) {
	svc, _, _ := newHospitalService()

	_, err := svc.UpdateHospital(99, &models.Hospital{Name: "X", Location: "y"}, 1)
	if !apperror.IsNotFound(err) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestDeleteHospitalRestrictedWhileDoctorsAttached(t *testing.T) {
	svc, hospitals, doctors := newHospitalService()

	saved, _ := svc.CreateHospital(&models.Hospital{Name: "General", Location: "x", TotalBeds: 1, AvailableBeds: 1}, 1)
	_ = doctors.CreateDoctor(&models.Doctor{Name: "Dr. A", Specialization: "Cardiology", HospitalID: saved.ID})

	err := svc.DeleteHospital(saved.ID, 1)
	if !apperror.IsConflict(err) {
		t.Fatalf("expected Conflict, got %v", err)
	}
	if _, ok := hospitals.hospitals[saved.ID]; !ok {
		t.Error("hospital must not be deleted while doctors reference it")
	}

	_ = doctors.DeleteDoctor(1)
	if err := svc.DeleteHospital(saved.ID, 1); err != nil {
		t.Fatalf("delete after doctors removed: %v", err)
	}
	if err := svc.DeleteHospital(saved.ID, 1); !apperror.IsNotFound(err) {
		t.Errorf("second delete should be NotFound, got %v", err)
	}
}

func TestFindNearestHospitalsInclusiveRadius(t *testing.T) {
	svc, _, _ := newHospitalService()

	// (0,0) and (0,1) are ~111 km apart
	origin, _ := svc.CreateHospital(&models.Hospital{Name: "Origin", Location: "a", Latitude: 0, Longitude: 0, TotalBeds: 1, AvailableBeds: 1}, 1)
	far, _ := svc.CreateHospital(&models.Hospital{Name: "OneDegree", Location: "b", Latitude: 0, Longitude: 1, TotalBeds: 1, AvailableBeds: 1}, 1)

	near, err := svc.FindNearestHospitals(0, 0, 50)
	if err != nil {
		t.Fatalf("FindNearestHospitals: %v", err)
	}
	if len(near) != 1 || near[0].ID != origin.ID {
		t.Errorf("radius=50 should return only the origin hospital, got %+v", near)
	}

	both, err := svc.FindNearestHospitals(0, 0, 200)
	if err != nil {
		t.Fatalf("FindNearestHospitals: %v", err)
	}
	if len(both) != 2 {
		t.Errorf("radius=200 should return both hospitals, got %d", len(both))
	}

	// Boundary is inclusive: radius exactly zero still matches the hospital
	// sitting on the query point
	exact, err := svc.FindNearestHospitals(0, 0, 0)
	if err != nil {
		t.Fatalf("FindNearestHospitals: %v", err)
	}
	if len(exact) != 1 || exact[0].ID != origin.ID {
		t.Errorf("radius=0 should include the coincident hospital, got %+v", exact)
	}
	_ = far
}

func TestFindNearestHospitalsEmptyDirectory(t *testing.T) {
	svc, _, _ := newHospitalService()

	result, err := svc.FindNearestHospitals(10, 10, 1000)
	if err != nil {
		t.Fatalf("FindNearestHospitals: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("expected empty result, got %d", len(result))
	}
}
