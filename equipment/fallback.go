// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equipment

import (
	"context"
	"log/slog"

	"github.com/scopos/scopos3d/metrics"
)

// FallbackData is the fixed dataset served when the registry cannot be
// reached outside of production.
var FallbackData = []Summary{
	{
		Code:            "1001218362",
		ModelCode:       "3192-3193",
		Name:            "Труба №12 (11575мм)",
		ClassName:       "Трубопровод",
		Manufacturer:    "Россия",
		InventoryNumber: "080923",
		Location:        "ЛПУ МГ Полянское/КС Полянская/КС-17",
	},
	{
		Code:            "1001218327",
		ModelCode:       "3194-3195",
		Name:            "Труба №23 (360мм)",
		ClassName:       "Трубопровод",
		Manufacturer:    "Германия",
		InventoryNumber: "080924",
		Location:        "ЛПУ МГ Полянское/КС Полянская/КС-17",
	},
	{
		Code:            "1001215593",
		ModelCode:       "3196-3197",
		Name:            "Труба №1 (2460мм)",
		ClassName:       "Трубопровод",
		Manufacturer:    "Франция",
		InventoryNumber: "080951",
		Location:        "ЛПУ МГ Полянское/КС Полянская/КС-17",
	},
}

// FallbackDetail returns the placeholder passport for a model code.
func FallbackDetail(modelCode string) *Detail {
	return &Detail{
		Summary: Summary{
			Code:            "1001215593",
			ModelCode:       modelCode,
			Name:            "Труба (" + modelCode + ")",
			ClassName:       "Трубопровод",
			Manufacturer:    "Франция",
			InventoryNumber: "080951",
			Location:        "ЛПУ МГ Полянское/КС Полянская/КС-17/Установка АВО газа КС-17/Группа АВО газа №9",
		},
		Type:           "E",
		ParentCode:     "1001215577",
		ParentName:     "Группа АВО газа №9",
		ProductYear:    "1981",
		ProductMonth:   "01",
		BranchName:     "ГТУфа Полянское ЛПУМГ",
		DepartmentName: "ПО ЭКС",
		UserStatus:     "ЭКСП",
		SystemStatus:   "ПВЕО",
	}
}

// fallback serves [FallbackData] when its source cannot be reached.
type fallback struct {
	src    Source
	logger *slog.Logger
}

// WithFallback returns src as is in production. Otherwise it returns
// a source that answers list and detail requests from [FallbackData]
// when src fails with a network error (see [IsNetwork]). Code sets have
// no fallback: their failures always propagate.
func WithFallback(src Source, production bool) Source {
	if production {
		return src
	}
	return &fallback{src: src, logger: slog.Default()}
}

func (fb *fallback) List(ctx context.Context) ([]Summary, error) {
	sums, err := fb.src.List(ctx)
	if IsNetwork(err) {
		fb.logger.Warn("equipment: registry unreachable, using fallback data", "err", err)
		metrics.EquipmentRequests.WithLabelValues("list", "fallback").Inc()
		return append([]Summary(nil), FallbackData...), nil
	}
	return sums, err
}

func (fb *fallback) Detail(ctx context.Context, modelCode string) (*Detail, error) {
	dt, err := fb.src.Detail(ctx, modelCode)
	if IsNetwork(err) {
		fb.logger.Warn("equipment: registry unreachable, using fallback detail", "code", modelCode, "err", err)
		metrics.EquipmentRequests.WithLabelValues("detail", "fallback").Inc()
		return FallbackDetail(modelCode), nil
	}
	return dt, err
}

func (fb *fallback) OverdueCodes(ctx context.Context) ([]string, error) {
	return fb.src.OverdueCodes(ctx)
}

func (fb *fallback) DefectiveCodes(ctx context.Context) ([]string, error) {
	return fb.src.DefectiveCodes(ctx)
}
