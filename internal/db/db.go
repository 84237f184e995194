package db

import (
	"log"

	"janamat/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to the database and returns the handle. The handle is
// constructed once in main and passed into services explicitly; there is
// no package-level singleton.
func Open(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return conn, nil
}

// Close releases the underlying connection pool.
func Close(conn *gorm.DB) {
	sqlDB, err := conn.DB()
	if err != nil {
		log.Printf("Failed to fetch underlying connection: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}

// Migrate creates or updates the schema.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Leader{},
		&models.Agenda{},
		&models.LeaderVote{},
		&models.AgendaVote{},
		&models.Comment{},
	)
}

// Seed loads the initial leader and agenda data on first boot.
func Seed(conn *gorm.DB) {
	var count int64
	conn.Model(&models.Leader{}).Count(&count)
	if count > 0 {
		log.Println("Leaders already seeded, skipping")
		return
	}

	leaders := []models.Leader{
		{
			Name:        "Rakshya Bam",
			Bio:         "Activist from Kailali (Sudurpaschim); former social-work student and community volunteer.",
			Manifesto:   "Urges Nepali youth to stay politically engaged; calls for accountability on past corruption and fair elections.",
			Affiliation: "Gen Z Movement",
			Region:      "Sudurpaschim",
			Verified:    true,
		},
		{
			Name:        "Prabesh Dahal",
			Bio:         "Biratnagar law student; Gen Z faction leader advocating reform.",
			Manifesto:   "Supports introducing a directly elected executive head (with recall option) in upcoming elections.",
			Affiliation: "Gen Z Movement",
			Region:      "Koshi",
			Verified:    true,
		},
		{
			Name:        "Miraj Dhungana",
			Bio:         "Prominent Gen Z activist (Kathmandu); recently announced a new political party.",
			Manifesto:   "Calls for a directly elected executive and overseas voting rights for Nepalis.",
			Affiliation: "Gen Z Movement",
			Region:      "Bagmati",
			Verified:    true,
		},
		{
			Name:        "Yujan Rajbhandari",
			Bio:         "24-year-old student leader who united Gen Z protesters online.",
			Manifesto:   "Demands corruption-free institutions and youth-focused reforms; helped select Sushila Karki as interim PM.",
			Affiliation: "Gen Z Movement Alliance",
			Region:      "Bagmati",
			Verified:    true,
		},
		{
			Name:        "Amit Khanal",
			Bio:         "24-year-old youth activist; part of the Gen-Z Movement Alliance.",
			Manifesto:   "Calls for controlling corruption and greater accountability in government.",
			Affiliation: "Gen Z Movement Alliance",
			Region:      "Bagmati",
			Verified:    true,
		},
		{
			Name:        "Purushottam Yadav",
			Bio:         "27-year-old youth leader from Siraha; MBA student turned anti-corruption activist.",
			Manifesto:   "Demands integrity, transparency and anti-corruption reforms in governance.",
			Affiliation: "Gen Z Movement",
			Region:      "Madhesh",
			Verified:    true,
		},
		{
			Name:        "Tanuja Pandey",
			Bio:         "Gen-Z activist and advocate of inclusive federalism.",
			Manifesto:   "Insists reforms stay within the constitution; opposes direct election of the prime minister; promotes accountability and inclusion.",
			Affiliation: "Gen Z Movement",
			Region:      "Bagmati",
			Verified:    true,
		},
	}

	agendas := []models.Agenda{
		{Title: "Anti-Corruption Reforms", Description: "Establish independent oversight bodies and strengthen audits", Category: "Governance"},
		{Title: "Constitutional Democracy", Description: "Uphold constitutional values and strengthen democratic institutions", Category: "Governance"},
		{Title: "Youth Empowerment", Description: "Create opportunities and policies focused on youth development", Category: "Social"},
		{Title: "Judicial Independence", Description: "Ensure independent and impartial judiciary", Category: "Justice"},
		{Title: "Electoral Transparency", Description: "Implement fair and transparent election processes", Category: "Elections"},
		{Title: "Federalism Reforms", Description: "Strengthen federal structure with inclusive governance", Category: "Governance"},
		{Title: "Accountability in Government", Description: "Hold leaders accountable for their actions", Category: "Governance"},
		{Title: "Merit-Based Civil Service", Description: "Establish merit-based hiring and promotion in government", Category: "Administration"},
	}

	for i, leader := range leaders {
		if err := conn.Create(&leader).Error; err != nil {
			log.Printf("Failed to create leader %s: %v", leader.Name, err)
			continue
		}
		// Each leader runs on three agendas, assigned round-robin.
		for j := 0; j < 3; j++ {
			a := agendas[(i+j)%len(agendas)]
			a.LeaderID = leader.ID
			if err := conn.Create(&a).Error; err != nil {
				log.Printf("Failed to create agenda %s: %v", a.Title, err)
			}
		}
	}
	log.Println("Initial leaders and agendas created successfully")
}
