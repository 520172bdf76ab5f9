package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/model"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newViewService(db *gorm.DB) ViewService {
	return NewViewService(
		repository.NewUserRepository(db),
		repository.NewClassRepository(db),
		repository.NewEnrollmentRepository(db),
	)
}

func TestTopClassesRanksByLiveEnrollment(t *testing.T) {
	db := openTestDB(t)
	svc := newViewService(db)

	counts := []int{10, 2, 7, 7, 1, 9, 3, 0}
	for i, n := range counts {
		id := seedClass(t, db, fmt.Sprintf("class-%d", i), "yogi@example.com", model.ClassStatusApproved)
		seedEnrollments(t, db, id, n)
	}

	classes, err := svc.TopClasses(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 6)

	got := make([]int64, 0, len(classes))
	for _, class := range classes {
		got = append(got, class.EnrolledCount)
	}
	assert.Equal(t, []int64{10, 9, 7, 7, 3, 2}, got)

	// The tie at 7 keeps insertion order: class-2 before class-3.
	assert.Equal(t, "class-2", classes[2].Name)
	assert.Equal(t, "class-3", classes[3].Name)
}

func TestTopClassesEmptyStore(t *testing.T) {
	db := openTestDB(t)
	svc := newViewService(db)

	classes, err := svc.TopClasses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestApprovedClassesFiltersStatus(t *testing.T) {
	db := openTestDB(t)
	svc := newViewService(db)

	seedClass(t, db, "approved-one", "a@example.com", model.ClassStatusApproved)
	seedClass(t, db, "still-pending", "a@example.com", model.ClassStatusPending)
	seedClass(t, db, "was-denied", "a@example.com", model.ClassStatusDenied)
	seedClass(t, db, "approved-two", "b@example.com", model.ClassStatusApproved)

	classes, err := svc.ApprovedClasses(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "approved-one", classes[0].Name)
	assert.Equal(t, "approved-two", classes[1].Name)
}

func TestInstructorDirectoryRetainsUnmatched(t *testing.T) {
	db := openTestDB(t)
	svc := newViewService(db)

	seedInstructor(t, db, "Instructor A", "a@example.com")
	seedInstructor(t, db, "Instructor B", "b@example.com")

	first := seedClass(t, db, "Morning Flow", "a@example.com", model.ClassStatusApproved)
	second := seedClass(t, db, "Evening Stretch", "a@example.com", model.ClassStatusApproved)
	seedEnrollments(t, db, first, 3)
	seedEnrollments(t, db, second, 5)

	// A class pointing at a non-instructor email must not surface anywhere.
	seedClass(t, db, "Orphan", "nobody@example.com", model.ClassStatusApproved)

	entries, err := svc.InstructorDirectory(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	a := entries[0]
	assert.Equal(t, "a@example.com", a.Email)
	assert.Equal(t, 2, a.ClassCount)
	assert.Equal(t, []string{"Morning Flow", "Evening Stretch"}, a.Classes)
	assert.Equal(t, int64(8), a.TotalStudents)

	b := entries[1]
	assert.Equal(t, "b@example.com", b.Email)
	assert.Equal(t, 0, b.ClassCount)
	assert.Empty(t, b.Classes)
	assert.Equal(t, int64(0), b.TotalStudents)
}

func TestPopularInstructorsTopSixDescending(t *testing.T) {
	db := openTestDB(t)
	svc := newViewService(db)

	totals := []int{8, 0, 12, 4, 9, 1, 7}
	for i, total := range totals {
		email := fmt.Sprintf("instructor-%d@example.com", i)
		seedInstructor(t, db, fmt.Sprintf("Instructor %d", i), email)
		id := seedClass(t, db, fmt.Sprintf("class-%d", i), email, model.ClassStatusApproved)
		seedEnrollments(t, db, id, total)
	}

	entries, err := svc.PopularInstructors(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 6)

	got := make([]int64, 0, len(entries))
	for _, entry := range entries {
		got = append(got, entry.TotalStudents)
	}
	assert.Equal(t, []int64{12, 9, 8, 7, 4, 1}, got)
}

func TestViewsTolerateDanglingEnrollment(t *testing.T) {
	db := openTestDB(t)
	svc := newViewService(db)

	seedInstructor(t, db, "Instructor A", "a@example.com")
	id := seedClass(t, db, "Morning Flow", "a@example.com", model.ClassStatusApproved)
	seedEnrollments(t, db, id, 2)

	// Enrollment referencing a class that was never created.
	require.NoError(t, db.Create(&model.Enrollment{
		UserEmail: "student@example.com",
		ClassID:   uuid.New(),
	}).Error)

	entries, err := svc.PopularInstructors(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].TotalStudents)

	classes, err := svc.TopClasses(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, int64(2), classes[0].EnrolledCount)
}
