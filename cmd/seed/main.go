package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ratemystore/ratemystore-backend/config"
	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	"github.com/ratemystore/ratemystore-backend/internal/app/repository"
	"github.com/ratemystore/ratemystore-backend/internal/db"
	"github.com/ratemystore/ratemystore-backend/pkg/util"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// XLSX 컬럼 레이아웃 (헤더 제외):
//
//	0: owner_name, 1: owner_email, 2: owner_password, 3: owner_address,
//	4: store_name, 5: store_email, 6: store_address
//
// 같은 owner_email 행이 여러 개면 첫 행의 계정이 재사용된다.
const columnCount = 7

type seedRow struct {
	ownerName     string
	ownerEmail    string
	ownerPassword string
	ownerAddress  string
	storeName     string
	storeEmail    string
	storeAddress  string
}

func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// XLSX 파일 읽기
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	rows, err := readSeedRows(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total stores to import: %d\n", len(rows))

	// 사용자 확인
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	userRepo := repository.NewUserRepository(db.GetDB())
	storeRepo := repository.NewStoreRepository(db.GetDB())

	imported := 0
	skipped := 0
	for _, row := range rows {
		owner, err := resolveOwner(userRepo, row)
		if err != nil {
			fmt.Printf("Skipping store %q: %v\n", row.storeName, err)
			skipped++
			continue
		}

		store := &model.Store{
			Name:    row.storeName,
			Email:   row.storeEmail,
			Address: row.storeAddress,
			OwnerID: owner.ID,
		}
		if err := storeRepo.Create(store); err != nil {
			fmt.Printf("Skipping store %q: %v\n", row.storeName, err)
			skipped++
			continue
		}
		imported++
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Stores imported: %d, skipped: %d\n", imported, skipped)
}

// resolveOwner finds the owner account by email or creates it with the
// password from the sheet.
func resolveOwner(userRepo repository.UserRepository, row seedRow) (*model.User, error) {
	owner, err := userRepo.FindByEmail(row.ownerEmail)
	if err == nil {
		return owner, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := util.HashPassword(row.ownerPassword)
	if err != nil {
		return nil, err
	}

	owner = &model.User{
		Name:         row.ownerName,
		Email:        row.ownerEmail,
		PasswordHash: hashedPassword,
		Address:      row.ownerAddress,
		Role:         model.RoleOwner,
	}
	if err := userRepo.Create(owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func readSeedRows(filePath string) ([]seedRow, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	// 첫 번째 시트 이름 가져오기
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var result []seedRow
	skipped := 0

	// 첫 행은 헤더이므로 스킵
	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < columnCount {
			skipped++
			continue
		}

		r := seedRow{
			ownerName:     strings.TrimSpace(row[0]),
			ownerEmail:    strings.TrimSpace(row[1]),
			ownerPassword: strings.TrimSpace(row[2]),
			ownerAddress:  strings.TrimSpace(row[3]),
			storeName:     strings.TrimSpace(row[4]),
			storeEmail:    strings.TrimSpace(row[5]),
			storeAddress:  strings.TrimSpace(row[6]),
		}

		if r.ownerEmail == "" || r.storeName == "" || r.storeEmail == "" {
			skipped++
			continue
		}

		result = append(result, r)
	}

	if skipped > 0 {
		fmt.Printf("Skipped %d malformed rows\n", skipped)
	}
	return result, nil
}
