package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/andreamorim18/helpdesk/internal/config"
	dbpkg "github.com/andreamorim18/helpdesk/internal/db"
	domain "github.com/andreamorim18/helpdesk/internal/domain/call"
	"github.com/andreamorim18/helpdesk/internal/models"
)

func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	log.Println("Starting seed...")

	upsertUser(db, models.User{
		Name:  "Administrador",
		Email: "admin@callmanagement.com",
		Role:  models.RoleAdmin,
	}, "admin123")

	tech1 := upsertUser(db, models.User{
		Name:         "Técnico João",
		Email:        "tech1@callmanagement.com",
		Role:         models.RoleTechnician,
		Availability: []string{"08:00", "09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"},
	}, "tech123")

	upsertUser(db, models.User{
		Name:         "Técnica Maria",
		Email:        "tech2@callmanagement.com",
		Role:         models.RoleTechnician,
		Availability: []string{"10:00", "11:00", "12:00", "13:00", "16:00", "17:00", "18:00", "19:00"},
	}, "tech123")

	upsertUser(db, models.User{
		Name:         "Técnico Pedro",
		Email:        "tech3@callmanagement.com",
		Role:         models.RoleTechnician,
		Availability: []string{"12:00", "13:00", "14:00", "15:00", "18:00", "19:00", "20:00", "21:00"},
	}, "tech123")

	client := upsertUser(db, models.User{
		Name:  "Cliente Teste",
		Email: "client@callmanagement.com",
		Role:  models.RoleClient,
	}, "client123")

	seedServices(db)

	seedSampleCall(db, client.ID, tech1.ID)

	log.Println("Seed completed successfully!")
	log.Println("Admin login: admin@callmanagement.com / admin123")
	log.Println("Technician login: tech1@callmanagement.com / tech123")
	log.Println("Client login: client@callmanagement.com / client123")
}

func upsertUser(db *gorm.DB, user models.User, password string) models.User {
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return existing
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	user.PasswordHash = string(hashed)

	if user.Availability == nil {
		user.Availability = []string{}
	}

	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user %s: %v", user.Email, err)
	}
	return user
}

func seedServices(db *gorm.DB) {
	services := []models.Service{
		{Name: "Instalação e atualização de softwares", Description: "Instalação e configuração de programas", Price: 150.00},
		{Name: "Instalação e atualização de hardwares", Description: "Montagem e upgrade de componentes", Price: 200.00},
		{Name: "Diagnóstico e remoção de vírus", Description: "Limpeza e segurança do sistema", Price: 120.00},
		{Name: "Suporte a impressoras", Description: "Configuração e reparo de impressoras", Price: 80.00},
		{Name: "Suporte a periféricos", Description: "Configuração de dispositivos", Price: 60.00},
		{Name: "Solução de problemas de conectividade", Description: "Configuração de rede e internet", Price: 100.00},
		{Name: "Backup e recuperação de dados", Description: "Cópia de segurança e recuperação", Price: 180.00},
		{Name: "Otimização de desempenho", Description: "Melhoria do desempenho do sistema", Price: 130.00},
		{Name: "Configuração de VPN e Acesso Remoto", Description: "Configuração de acesso remoto seguro", Price: 110.00},
	}

	for _, s := range services {
		var count int64
		db.Model(&models.Service{}).Where("name = ?", s.Name).Count(&count)
		if count > 0 {
			continue
		}
		s.IsActive = true
		if err := db.Create(&s).Error; err != nil {
			log.Fatalf("failed to create service %s: %v", s.Name, err)
		}
	}
}

func seedSampleCall(db *gorm.DB, clientID, technicianID uint) {
	var count int64
	db.Model(&models.Call{}).Count(&count)
	if count > 0 {
		return
	}

	var services []models.Service
	if err := db.Limit(2).Find(&services).Error; err != nil || len(services) < 2 {
		return
	}

	call := models.Call{
		Title:        "Problema com computador lento",
		Description:  "Computador está muito lento e travando frequentemente",
		Status:       string(domain.InitialStatus()),
		TotalValue:   domain.TotalOf(services),
		ClientID:     clientID,
		TechnicianID: technicianID,
		Services:     domain.Snapshot(0, services),
	}

	if err := db.Create(&call).Error; err != nil {
		log.Fatalf("failed to create sample call: %v", err)
	}

	log.Printf("Sample call created: %d", call.ID)
}
