// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package equipment is the data source of the viewer: the equipment
// registry of the plant and the code sets used by filters.
package equipment

import (
	"context"

	"cogentcore.org/core/base/errors"
	"github.com/tidwall/gjson"
)

// ErrNotFound is returned when there is no equipment record for a code.
var ErrNotFound = errors.New("equipment: not found")

// Summary is the short record of one piece of equipment.
type Summary struct {

	// Code is the registry code of the equipment.
	Code string

	// ModelCode links the record to scene nodes. A node name may hold
	// several model codes, as in "3192-3193".
	ModelCode string

	Name            string
	ClassName       string
	Manufacturer    string
	InventoryNumber string
	SerialNumber    string
	Location        string
}

// Detail is the full passport of one piece of equipment.
type Detail struct {
	Summary

	Type              string
	ClassCode         string
	ParentCode        string
	ParentName        string
	ProductYear       string
	ProductMonth      string
	CommissioningDate string
	BranchName        string
	DepartmentName    string
	UserStatus        string
	SystemStatus      string
}

// Source provides equipment data. Implementations must be safe to call
// from multiple goroutines.
type Source interface {

	// List returns all equipment.
	List(ctx context.Context) ([]Summary, error)

	// Detail returns the passport for the given model code,
	// or [ErrNotFound].
	Detail(ctx context.Context, modelCode string) (*Detail, error)

	// OverdueCodes returns the model codes of equipment with
	// overdue maintenance.
	OverdueCodes(ctx context.Context) ([]string, error)

	// DefectiveCodes returns the model codes of equipment with
	// open defect notifications.
	DefectiveCodes(ctx context.Context) ([]string, error)
}

func summaryFromJSON(r gjson.Result) Summary {
	return Summary{
		Code:            r.Get("code").String(),
		ModelCode:       r.Get("modelCode").String(),
		Name:            r.Get("name").String(),
		ClassName:       r.Get("className").String(),
		Manufacturer:    r.Get("manufacturer").String(),
		InventoryNumber: r.Get("inventoryNumber").String(),
		SerialNumber:    r.Get("serialNumber").String(),
		Location:        r.Get("location").String(),
	}
}

func detailFromJSON(r gjson.Result) *Detail {
	return &Detail{
		Summary:           summaryFromJSON(r),
		Type:              r.Get("type").String(),
		ClassCode:         r.Get("classCode").String(),
		ParentCode:        r.Get("parentCode").String(),
		ParentName:        r.Get("parentName").String(),
		ProductYear:       r.Get("productYear").String(),
		ProductMonth:      r.Get("productMonth").String(),
		CommissioningDate: r.Get("comissioningDate").String(),
		BranchName:        r.Get("branchName").String(),
		DepartmentName:    r.Get("prDepName").String(),
		UserStatus:        r.Get("userStat").String(),
		SystemStatus:      r.Get("systemStat").String(),
	}
}
