package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/buxinhealth/website/internal/service"
	"github.com/buxinhealth/website/internal/store"
	"github.com/gin-gonic/gin"
)

// UploadFile 处理后台文件上传:校验通过后转发至媒体托管服务,
// 成功后在本地记录一条上传流水。
func (a *API) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file provided")
		return
	}
	if fileHeader.Filename == "" {
		respondError(c, http.StatusBadRequest, "No file selected")
		return
	}

	if err := a.media.Validate(fileHeader.Filename); err != nil {
		ext := ""
		if dot := strings.LastIndex(fileHeader.Filename, "."); dot >= 0 {
			ext = strings.ToLower(fileHeader.Filename[dot+1:])
		}
		respondError(c, http.StatusBadRequest,
			"Invalid file type: ."+ext+". Allowed types: "+strings.Join(service.AllowedExtensions(), ", "))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := a.media.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFileTooLarge):
			respondError(c, http.StatusRequestEntityTooLarge, "File exceeds the maximum upload size")
		case errors.Is(err, service.ErrMediaNotConfigured):
			respondError(c, http.StatusInternalServerError, "Media service is not configured")
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "Upload failed: "+err.Error())
		}
		return
	}

	record := store.UploadedFile{
		OriginalFilename: fileHeader.Filename,
		URL:              result.URL,
		PublicID:         result.PublicID,
		FileType:         service.FileType(fileHeader.Filename),
		FileSize:         result.Bytes,
		Width:            result.Width,
		Height:           result.Height,
		UploadedAt:       time.Now(),
	}
	if err := a.submissions.RecordUpload(&record); err != nil {
		// 上传已经成功,流水记录失败不影响返回
		c.Error(err)
	}

	c.JSON(http.StatusOK, gin.H{"url": result.URL})
}
