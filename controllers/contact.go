package controllers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"outreachpro-backend/config"
	"outreachpro-backend/models"
	"outreachpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateContactInput defines the expected JSON structure for creating a contact
type CreateContactInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// UpdateContactInput defines the expected JSON structure for updating a contact
type UpdateContactInput struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Status *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// CreateContact creates a new contact for the user
func CreateContact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists for this user
	var existingContact models.Contact
	if err := config.DB.Where("user_id = ? AND phone = ?", userID, input.Phone).
		First(&existingContact).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Contact with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	contact := models.Contact{
		UserID: userID,
		Name:   input.Name,
		Phone:  input.Phone,
		Status: models.ContactActive,
	}

	if err := config.DB.Create(&contact).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// GetContacts retrieves all contacts for the user
func GetContacts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	query := config.DB.Where("user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ? OR phone LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var contacts []models.Contact
	if err := query.Order("created_at DESC").Find(&contacts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve contacts")
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// GetContact retrieves a specific contact by ID
func GetContact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	contactID, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	var contact models.Contact
	if err := config.DB.Where("user_id = ? AND id = ?", userID, contactID).
		First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Contact not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, contact)
}

// UpdateContact updates an existing contact
func UpdateContact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	contactID, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	var input UpdateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var contact models.Contact
	if err := config.DB.Where("user_id = ? AND id = ?", userID, contactID).
		First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Contact not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		contact.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}

		if contact.Phone != *input.Phone {
			var existingContact models.Contact
			if err := config.DB.Where("user_id = ? AND phone = ?", userID, *input.Phone).
				First(&existingContact).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another contact with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		contact.Phone = *input.Phone
	}
	if input.Status != nil {
		contact.Status = *input.Status
	}

	if err := config.DB.Save(&contact).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact soft deletes a contact
func DeleteContact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	contactID, ok := parsePathID(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userID, contactID).
		Delete(&models.Contact{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete contact")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Contact not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}

// parseContactsCSV reads name,phone[,status] rows. A leading header
// line is tolerated; rows with a missing name or an invalid phone are
// reported in skipped and dropped, never aborting the rest of the file.
func parseContactsCSV(r io.Reader, userID uuid.UUID) (contacts []models.Contact, skipped []string) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may or may not carry a status column

	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("row %d: %v", row, err))
			continue
		}
		if len(record) < 2 {
			skipped = append(skipped, fmt.Sprintf("row %d: expected name,phone", row))
			continue
		}

		name := strings.TrimSpace(record[0])
		phone := strings.TrimSpace(record[1])

		// Tolerate a header line
		if row == 1 && strings.EqualFold(name, "name") && strings.EqualFold(phone, "phone") {
			continue
		}

		if name == "" || !utils.ValidatePhone(phone) {
			skipped = append(skipped, fmt.Sprintf("row %d: invalid name or phone", row))
			continue
		}

		status := models.ContactActive
		if len(record) >= 3 {
			s := strings.ToLower(strings.TrimSpace(record[2]))
			if s == models.ContactInactive {
				status = models.ContactInactive
			}
		}

		contacts = append(contacts, models.Contact{
			UserID: userID,
			Name:   name,
			Phone:  phone,
			Status: status,
		})
	}

	return contacts, skipped
}

// ImportContacts ingests a CSV upload of name,phone[,status] rows.
// Invalid rows are skipped and reported; valid rows are inserted.
func ImportContacts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "CSV file is required (multipart field 'file')")
		return
	}
	defer file.Close()

	contacts, skipped := parseContactsCSV(file, userID)

	imported := 0
	for _, contact := range contacts {
		if err := config.DB.Create(&contact).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				skipped = append(skipped, fmt.Sprintf("duplicate phone %s", contact.Phone))
			} else {
				skipped = append(skipped, fmt.Sprintf("failed to save %s", contact.Phone))
			}
			continue
		}
		imported++
	}

	c.JSON(http.StatusOK, gin.H{
		"imported": imported,
		"skipped":  skipped,
	})
}
