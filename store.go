package main

import (
	"errors"
	"time"

	"debtbook/models"

	"gorm.io/gorm"
)

// errNotFound covers both a record that does not exist and a record owned
// by another user. Callers cannot tell the two apart, so record ids never
// leak existence information across owners.
var errNotFound = errors.New("record not found")

func listRecords(ownerID uint) ([]models.Record, error) {
	records := []models.Record{}
	if err := db.Where("user_id = ?", ownerID).Order("created_at desc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func createRecord(ownerID uint, in recordInput) (models.Record, error) {
	v, err := validateRecordInput(in, time.Now())
	if err != nil {
		return models.Record{}, err
	}
	rec := models.Record{
		UserID:          ownerID,
		Name:            v.Name,
		Contact:         v.Contact,
		TotalAmount:     v.TotalAmount,
		RemainingAmount: v.RemainingAmount,
		Date:            v.Date,
	}
	if err := db.Create(&rec).Error; err != nil {
		return models.Record{}, err
	}
	return rec, nil
}

// updateRecord replaces all mutable fields of an owned record. Validation
// runs against the incoming values before the single row write, so a
// rejected update leaves the stored record untouched.
func updateRecord(ownerID, recordID uint, in recordInput) (models.Record, error) {
	var rec models.Record
	if err := db.Where("id = ? AND user_id = ?", recordID, ownerID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Record{}, errNotFound
		}
		return models.Record{}, err
	}
	v, err := validateRecordInput(in, time.Now())
	if err != nil {
		return models.Record{}, err
	}
	rec.Name = v.Name
	rec.Contact = v.Contact
	rec.TotalAmount = v.TotalAmount
	rec.RemainingAmount = v.RemainingAmount
	rec.Date = v.Date
	if err := db.Save(&rec).Error; err != nil {
		return models.Record{}, err
	}
	return rec, nil
}

func deleteRecord(ownerID, recordID uint) error {
	res := db.Where("id = ? AND user_id = ?", recordID, ownerID).Delete(&models.Record{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errNotFound
	}
	return nil
}
