// Package seed provides database seeding utilities for development and
// demo environments.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"kalyanam/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	ShouldClean bool
}

var (
	religions = []string{"Hindu", "Muslim", "Christian", "Sikh", "Jain", "Buddhist"}

	castes = []string{
		"Brahmin", "Kshatriya", "Vaishya", "Maratha", "Reddy", "Nair",
		"Agarwal", "Khatri", "Jat", "Yadav", "Lingayat", "Kayastha",
	}

	cities = []string{
		"Mumbai", "Delhi", "Bengaluru", "Hyderabad", "Chennai", "Pune",
		"Kolkata", "Ahmedabad", "Jaipur", "Lucknow", "Kochi", "Chandigarh",
	}

	states = []string{
		"Maharashtra", "Delhi", "Karnataka", "Telangana", "Tamil Nadu",
		"West Bengal", "Gujarat", "Rajasthan", "Uttar Pradesh", "Kerala", "Punjab",
	}

	motherTongues = []string{
		"Hindi", "Marathi", "Kannada", "Telugu", "Tamil", "Bengali",
		"Gujarati", "Punjabi", "Malayalam", "Urdu",
	}

	educations = []string{
		"B.Tech", "M.Tech", "MBBS", "MD", "MBA", "B.Com", "M.Com",
		"CA", "B.Sc", "M.Sc", "LLB", "PhD",
	}

	occupations = []string{
		"Software Engineer", "Doctor", "Chartered Accountant", "Teacher",
		"Civil Servant", "Business Owner", "Banker", "Architect",
		"Lawyer", "Pharmacist", "Data Scientist", "Professor",
	}

	incomeBands = []string{
		"3-5 LPA", "5-10 LPA", "10-15 LPA", "15-25 LPA", "25-50 LPA", "50+ LPA",
	}

	rashis = []string{
		"Mesha", "Vrishabha", "Mithuna", "Karka", "Simha", "Kanya",
		"Tula", "Vrishchika", "Dhanu", "Makara", "Kumbha", "Meena",
	}

	maleFirstNames = []string{
		"Aarav", "Vivaan", "Aditya", "Arjun", "Rohan", "Karthik", "Rahul",
		"Siddharth", "Nikhil", "Pranav", "Varun", "Amit", "Ravi", "Suresh",
		"Manoj", "Deepak", "Harish", "Kiran", "Sanjay", "Vikram",
	}

	femaleFirstNames = []string{
		"Asha", "Priya", "Ananya", "Divya", "Kavya", "Meera", "Neha",
		"Pooja", "Riya", "Sneha", "Shruti", "Anjali", "Lakshmi", "Swati",
		"Nandini", "Aishwarya", "Bhavna", "Chitra", "Gayatri", "Isha",
	}

	lastNames = []string{
		"Sharma", "Verma", "Gupta", "Iyer", "Nair", "Reddy", "Rao",
		"Patel", "Shah", "Mehta", "Joshi", "Desai", "Kulkarni", "Chopra",
		"Malhotra", "Kapoor", "Bhat", "Menon", "Pillai", "Banerjee",
	}
)

// Seed populates the database with demo data: membership plans, an admin
// account, and approved members with complete profiles and preferences.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users...", opts.NumUsers)

	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	plans, err := createPlans(db)
	if err != nil {
		return fmt.Errorf("failed to create membership plans: %w", err)
	}
	log.Printf("✓ %d membership plans available", len(plans))

	if err := createAdmin(db); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Println("✓ admin user available (admin@example.com)")

	users, err := createMembers(db, r, plans, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create members: %w", err)
	}
	log.Printf("✓ %d members created", len(users))

	interests, err := createInterests(db, r, users)
	if err != nil {
		return fmt.Errorf("failed to create interests: %w", err)
	}
	log.Printf("✓ %d interests created", interests)

	matches, err := createCuratedMatches(db, r, users)
	if err != nil {
		return fmt.Errorf("failed to create curated matches: %w", err)
	}
	log.Printf("✓ %d curated matches created", matches)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE profile_views, curated_matches, interests, preferences, profiles, users, membership_plans RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createPlans(db *gorm.DB) ([]models.MembershipPlan, error) {
	silverLimit := 25
	goldLimit := 100

	plans := []models.MembershipPlan{
		{
			Name:              "silver",
			Price:             499,
			DurationMonths:    1,
			ProfileViewsLimit: &silverLimit,
			Features:          []string{"25 profile views", "Send interests", "Member search"},
			IsActive:          true,
		},
		{
			Name:              "gold",
			Price:             1299,
			DurationMonths:    3,
			ProfileViewsLimit: &goldLimit,
			Features:          []string{"100 profile views", "Send interests", "Member search", "See who viewed you"},
			IsActive:          true,
		},
		{
			Name:           "platinum",
			Price:          2999,
			DurationMonths: 6,
			Features:       []string{"Unlimited profile views", "Send interests", "Member search", "See who viewed you", "Curated matches"},
			IsActive:       true,
		},
	}

	for i := range plans {
		var existing models.MembershipPlan
		err := db.Where("name = ?", plans[i].Name).First(&existing).Error
		if err == nil {
			plans[i] = existing
			continue
		}
		if err := db.Create(&plans[i]).Error; err != nil {
			return nil, err
		}
	}
	return plans, nil
}

func createAdmin(db *gorm.DB) error {
	var existing models.User
	if err := db.Where("email = ?", "admin@example.com").First(&existing).Error; err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("AdminPassword1!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:      "admin@example.com",
		Password:   string(hashed),
		FirstName:  "Admin",
		Gender:     models.GenderMale,
		IsAdmin:    true,
		IsApproved: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	return db.Create(&models.Profile{UserID: admin.ID}).Error
}

func createMembers(db *gorm.DB, r *rand.Rand, plans []models.MembershipPlan, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	hashed, err := bcrypt.GenerateFromPassword([]byte("MemberPassword1!"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	for i := 0; i < count; i++ {
		gender := models.GenderMale
		first := maleFirstNames[r.Intn(len(maleFirstNames))]
		if i%2 == 1 {
			gender = models.GenderFemale
			first = femaleFirstNames[r.Intn(len(femaleFirstNames))]
		}
		last := lastNames[r.Intn(len(lastNames))]

		age := 22 + r.Intn(18)
		dob := time.Now().AddDate(-age, -r.Intn(12), -r.Intn(28))
		locIdx := r.Intn(len(cities))

		user := models.User{
			Email:       fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
			Password:    string(hashed),
			FirstName:   first,
			LastName:    last,
			Phone:       fmt.Sprintf("+91%d", 7000000000+r.Int63n(2999999999)),
			Gender:      gender,
			DateOfBirth: &dob,
			IsApproved:  true,
		}

		// Roughly two thirds of members hold an active membership.
		if r.Intn(3) > 0 {
			plan := plans[r.Intn(len(plans))]
			expiry := time.Now().Add(plan.Period()).Add(-time.Duration(r.Intn(20)) * 24 * time.Hour)
			user.MembershipType = &plan.Name
			user.MembershipExpiry = &expiry
			user.PaymentStatus = models.PaymentStatusPaid
		}

		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}

		religion := religions[r.Intn(len(religions))]
		profile := models.Profile{
			UserID:        user.ID,
			HeightCm:      150 + r.Intn(45),
			WeightKg:      48 + r.Intn(45),
			Religion:      religion,
			Caste:         castes[r.Intn(len(castes))],
			Education:     educations[r.Intn(len(educations))],
			Occupation:    occupations[r.Intn(len(occupations))],
			AnnualIncome:  incomeBands[r.Intn(len(incomeBands))],
			MaritalStatus: models.MaritalStatusNeverMarried,
			City:          cities[locIdx],
			State:         states[locIdx%len(states)],
			Country:       "India",
			MotherTongue:  motherTongues[r.Intn(len(motherTongues))],
			Rashi:         rashis[r.Intn(len(rashis))],
			Manglik:       r.Intn(5) == 0,
			AboutMe:       gofakeit.Paragraph(1, 2, 8, " "),
			FamilyDetails: gofakeit.Sentence(10),
		}
		if r.Intn(10) == 0 {
			profile.MaritalStatus = models.MaritalStatusDivorced
		}
		if err := db.Create(&profile).Error; err != nil {
			return nil, err
		}

		ageMin := age - 4
		if ageMin < 18 {
			ageMin = 18
		}
		ageMax := age + 4
		pref := models.Preference{
			UserID:   user.ID,
			AgeMin:   &ageMin,
			AgeMax:   &ageMax,
			Religion: religion,
			Location: cities[r.Intn(len(cities))],
		}
		if err := db.Create(&pref).Error; err != nil {
			return nil, err
		}

		users = append(users, user)
	}
	return users, nil
}

func createInterests(db *gorm.DB, r *rand.Rand, users []models.User) (int, error) {
	created := 0
	for i := range users {
		sender := users[i]
		for _, receiver := range pickOppositeGender(r, users, sender, 2) {
			status := models.InterestStatusSent
			switch r.Intn(3) {
			case 1:
				status = models.InterestStatusAccepted
			case 2:
				status = models.InterestStatusRejected
			}
			interest := models.Interest{
				SenderID:   sender.ID,
				ReceiverID: receiver.ID,
				Status:     status,
				Message:    gofakeit.Sentence(8),
			}
			// The unique pair index rejects repeats; skip and move on.
			if err := db.Create(&interest).Error; err == nil {
				created++
			}
		}
	}
	return created, nil
}

func createCuratedMatches(db *gorm.DB, r *rand.Rand, users []models.User) (int, error) {
	created := 0
	for i := range users {
		if r.Intn(4) != 0 {
			continue
		}
		user := users[i]
		for _, matched := range pickOppositeGender(r, users, user, 1) {
			match := models.CuratedMatch{
				UserID:        user.ID,
				MatchedUserID: matched.ID,
				Score:         60 + r.Intn(40),
				Status:        models.CuratedMatchStatusSuggested,
				Note:          "Suggested based on community and horoscope compatibility",
			}
			if err := db.Create(&match).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func pickOppositeGender(r *rand.Rand, users []models.User, of models.User, n int) []models.User {
	var pool []models.User
	for _, u := range users {
		if u.ID != of.ID && u.Gender == of.Gender.Opposite() {
			pool = append(pool, u)
		}
	}
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}
