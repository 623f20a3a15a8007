package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
// 两个网格视图（含投影字段）导出为 .xlsx，由 Handler 设置附件响应头后写入
type ExportService interface {
	ExportCafes(ctx context.Context) (*bytes.Buffer, string, error)
	ExportEmployees(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	cafeSvc CafeService
	empSvc  EmployeeService
	logger  *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(cafeSvc CafeService, empSvc EmployeeService, logger *zap.Logger) ExportService {
	return &exportService{cafeSvc: cafeSvc, empSvc: empSvc, logger: logger}
}

// ExportCafes 导出咖啡店网格（与列表接口同一投影、同一排序）
func (s *exportService) ExportCafes(ctx context.Context) (*bytes.Buffer, string, error) {
	cafes, err := s.cafeSvc.List(ctx)
	if err != nil {
		return nil, "", err
	}

	headers := []string{"ID", "Name", "Description", "Location", "Employees"}
	rows := make([][]interface{}, 0, len(cafes))
	for _, c := range cafes {
		rows = append(rows, []interface{}{c.ID, c.Name, c.Description, c.Location, c.EmployeeCount})
	}

	buf, err := s.writeSheet("Cafes", headers, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, exportFilename("cafes"), nil
}

// ExportEmployees 导出员工网格（与列表接口同一投影、同一排序）
func (s *exportService) ExportEmployees(ctx context.Context) (*bytes.Buffer, string, error) {
	emps, err := s.empSvc.List(ctx)
	if err != nil {
		return nil, "", err
	}

	headers := []string{"ID", "Name", "Email", "Phone", "Gender", "Cafe", "Employment Date", "Days Worked"}
	rows := make([][]interface{}, 0, len(emps))
	for _, e := range emps {
		date := ""
		if e.EmploymentDate != nil {
			date = e.EmploymentDate.Format("2006-01-02")
		}
		rows = append(rows, []interface{}{
			e.ID, e.Name, e.EmailAddress, e.PhoneNumber, e.Gender, e.CafeName, date, e.DaysWorked,
		})
	}

	buf, err := s.writeSheet("Employees", headers, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, exportFilename("employees"), nil
}

// ── 内部辅助方法 ──

// writeSheet 单 Sheet 网格：加粗表头 + 一行一条记录
func (s *exportService) writeSheet(sheetName string, headers []string, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for r, row := range rows {
		for col, val := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	return buf, nil
}

func exportFilename(prefix string) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().In(fixedZone).Format("20060102"))
}
