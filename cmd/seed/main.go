package main

import (
	"fmt"

	"github.com/enaszrekat/reuse-market-app/internal/model"
	"github.com/enaszrekat/reuse-market-app/pkg/config"
	"github.com/enaszrekat/reuse-market-app/pkg/database"
	"github.com/enaszrekat/reuse-market-app/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []model.UserModel{
		{Name: "Alice Demo", Username: "alice_demo", Email: "alice@test.com", Country: "DE", AccountType: "Seller"},
		{Name: "Bob Demo", Username: "bob_demo", Email: "bob@test.com", Country: "FR", Role: "admin"},
		{Name: "", Username: "charlie_demo", Email: "charlie@test.com", Country: "ES"},
	}

	userIDs := make([]int64, 0, len(testUsers))

	for i := range testUsers {
		user := &testUsers[i]

		var existing model.UserModel
		result := db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existing)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Username)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)
	}

	if len(userIDs) < 2 {
		return fmt.Errorf("not enough seed users to create products and conversations")
	}

	imagePath := func(s string) *string { return &s }

	products := []struct {
		product model.ProductModel
		images  []model.ProductImageModel
	}{
		{
			product: model.ProductModel{
				Title:       "Wooden chair",
				Description: "Solid oak, light wear",
				Price:       25.50,
				Type:        "sell",
				Status:      "approved",
				UserID:      userIDs[0],
			},
			images: []model.ProductImageModel{
				{ImagePath: imagePath("uploads/chair-front.jpg")},
				{ImagePath: imagePath("uploads/chair-side.jpg")},
			},
		},
		{
			product: model.ProductModel{
				Title:       "Desk lamp",
				Description: "Works, needs a new bulb",
				Price:       8,
				Type:        "sell",
				Status:      "pending",
				UserID:      userIDs[1],
			},
			images: []model.ProductImageModel{
				{ImageName: imagePath("lamp.jpg")},
			},
		},
		{
			product: model.ProductModel{
				Title:  "Moving boxes",
				Price:  0,
				Type:   "give",
				Status: "approved",
				UserID: userIDs[1],
			},
		},
	}

	for i := range products {
		p := &products[i].product
		if err := db.Where("title = ? AND user_id = ?", p.Title, p.UserID).First(&model.ProductModel{}).Error; err == nil {
			log.Info("Product %q already exists, skipping", p.Title)
			continue
		}

		if err := db.Create(p).Error; err != nil {
			log.Error("Failed to create product %q: %v", p.Title, err)
			continue
		}

		for j := range products[i].images {
			img := &products[i].images[j]
			img.ProductID = p.ID
			if err := db.Create(img).Error; err != nil {
				log.Error("Failed to create image for product %q: %v", p.Title, err)
			}
		}

		log.Info("Created product: %s", p.Title)
	}

	conversation := &model.ConversationModel{
		BuyerID:  userIDs[1],
		SellerID: userIDs[0],
	}
	if err := db.FirstOrCreate(conversation, model.ConversationModel{BuyerID: userIDs[1], SellerID: userIDs[0]}).Error; err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}

	message := &model.MessageModel{
		ConversationID: conversation.ID,
		SenderID:       userIDs[1],
		ReceiverID:     userIDs[0],
		Message:        "Hi, is the chair still available?",
	}
	if err := db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	log.Info("Created conversation %d with a first message", conversation.ID)
	return nil
}
