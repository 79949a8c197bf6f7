package services

import (
  "context"
  "bytes"
  "fmt"
  "image"
  "image/color"
  "encoding/json"
  "io/ioutil"
  "math/rand"
  "os"
  "path/filepath"
  "strings"
  "time"

  "github.com/disintegration/imaging"
  "github.com/fogleman/gg"
  "github.com/golang/freetype/truetype"
  "golang.org/x/image/font"
  "gorm.io/gorm"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
)

type AvatarService interface {
  CreateAndUploadUserAvatar(ctx context.Context, tx *gorm.DB, user *types.User) error
  CreateAndUploadClassroomAvatar(ctx context.Context, tx *gorm.DB, classroom *types.Classroom) error

  GenerateUserAvatar(ctx context.Context, tx *gorm.DB, user *types.User) (bytes.Buffer, error)
  GenerateClassroomAvatar(ctx context.Context, tx *gorm.DB, classroom *types.Classroom) (bytes.Buffer, error)
}

type avatarService struct {
  db              *gorm.DB
  log             *logger.Logger
  bucketService   BucketService
  classroomIcons  []string
  bgColors        []color.NRGBA
  fontFace        font.Face
}

func NewAvatarService(db *gorm.DB, log *logger.Logger, bucketService BucketService) (AvatarService, error) {
  serviceLog := log.With("service", "AvatarService")

  // Every registration uploads through the bucket; refuse to wire without one.
  if bucketService == nil {
    return nil, fmt.Errorf("AvatarService requires a BucketService")
  }

  rand.Seed(time.Now().UnixNano())

  //1) Gather list of icons in classroom folder
  classroomDir := os.Getenv("CLASSROOM_ASSET_DIR_PATH")
  if classroomDir == "" {
    classroomDir = "./assets/classroom"
  }
  classroomFiles, err := findFiles(classroomDir)
  if err != nil {
    return nil, fmt.Errorf("Failed scanning classroom icons: %w", err)
  }
  if len(classroomFiles) == 0 {
    return nil, fmt.Errorf("No classroom icons found: %s", classroomDir)
  }

  //2) Get Avatar Colors
  colorsJSONPath := os.Getenv("AVATAR_COLORS_JSON_PATH")
  if colorsJSONPath == "" {
    return nil, fmt.Errorf("env var AVATAR_COLORS_JSON_PATH is empty")
  }
  serviceLog.Info("Loading avatar colors from JSON file", "path", colorsJSONPath)
  bgColors, err := loadColorsFromFile(colorsJSONPath)
  if err != nil {
    return nil, fmt.Errorf("could not load avatar colors: %w", err)
  }

  //3) Get Font
  fontPath := os.Getenv("AVATAR_FONT")
  if fontPath == "" {
    return nil, fmt.Errorf("env var AVATAR_FONT is empty")
  }
  serviceLog.Info("Loading avatar font from TTF file", "font", fontPath)
  face, err := loadFontFace(fontPath, 206)
  if err != nil {
    return nil, fmt.Errorf("could not load avatar font: %w", err)
  }

  service := &avatarService{
    db:             db,
    log:            serviceLog,
    bucketService:  bucketService,
    classroomIcons: classroomFiles,
    bgColors:       bgColors,
    fontFace:       face,
  }
  return service, nil
}

func (as *avatarService) CreateAndUploadUserAvatar(ctx context.Context, tx *gorm.DB, user *types.User) error {
  buf, err := as.GenerateUserAvatar(ctx, tx, user)
  if err != nil {
    return err
  }
  bucketKey := fmt.Sprintf("user_avatars/%s.png", user.ID.String())
  if err := as.bucketService.UploadFile(ctx, tx, bucketKey, bytes.NewReader(buf.Bytes())); err != nil {
    return fmt.Errorf("Failed to upload user avatar: %w", err)
  }
  if user.AvatarBucketKey != bucketKey {
    user.AvatarBucketKey = bucketKey
  }
  finalURL := as.bucketService.GetPublicURL(bucketKey)
  if user.AvatarURL != finalURL {
    user.AvatarURL = finalURL
  }
  return nil
}

func (as *avatarService) CreateAndUploadClassroomAvatar(ctx context.Context, tx *gorm.DB, classroom *types.Classroom) error {
  buf, err := as.GenerateClassroomAvatar(ctx, tx, classroom)
  if err != nil {
    return err
  }
  bucketKey := fmt.Sprintf("classroom_avatars/%s.png", classroom.ID.String())
  if err := as.bucketService.UploadFile(ctx, tx, bucketKey, bytes.NewReader(buf.Bytes())); err != nil {
    return fmt.Errorf("Failed to upload classroom avatar: %w", err)
  }
  if classroom.AvatarBucketKey != bucketKey {
    classroom.AvatarBucketKey = bucketKey
  }
  finalURL := as.bucketService.GetPublicURL(bucketKey)
  if classroom.AvatarURL != finalURL {
    classroom.AvatarURL = finalURL
  }
  return nil
}

func (as *avatarService) GenerateUserAvatar(ctx context.Context, tx *gorm.DB, user *types.User) (bytes.Buffer, error) {
	const size = 512

	// 1) Create drawing context
	dc := gg.NewContext(size, size)

	// 2) Circular mask so final image is round
	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Clip()

	// 3) Use a single solid background color (no gradient)
	base := as.bgColors[rand.Intn(len(as.bgColors))]
	dc.SetColor(base)
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	// 4) Compute user initials
	initials := computeInitials(user.FirstName, user.LastName)

	// 5) Set font & measure text
	dc.SetFontFace(as.fontFace)
	tw, th := dc.MeasureString(initials)
	cx, cy := float64(size)/2, float64(size)/2

	// 6) Draw main white text
	dc.SetColor(color.White)
	dc.DrawString(initials, cx-(tw/2)+5, cy+(th/2)-10)

	// 7) Export to PNG
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return buf, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf, nil
}

func (as *avatarService) GenerateClassroomAvatar(ctx context.Context, tx *gorm.DB, classroom *types.Classroom) (bytes.Buffer, error) {
	const size = 512
	dc := gg.NewContext(size, size)

	// Circular mask
	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Clip()

	// Solid color background
	base := as.bgColors[rand.Intn(len(as.bgColors))]
	dc.SetColor(base)
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	// Load and colorize icon
	iconPath := as.classroomIcons[rand.Intn(len(as.classroomIcons))]
	iconImg, err := imaging.Open(iconPath)
	if err != nil {
		return bytes.Buffer{}, fmt.Errorf("failed to open classroom icon: %w", err)
	}
	whiteIcon := colorizeImageWhite(iconImg)

	// Scale the icon (adjust maxIconSize as you need)
	maxIconSize := float64(size) * 0.5
	whiteIcon = imaging.Fit(whiteIcon, int(maxIconSize), int(maxIconSize), imaging.Lanczos)

	// Draw the icon with no shadow or offset
	dc.DrawImageAnchored(whiteIcon, size/2, size/2, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return buf, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf, nil
}


//----------------------------------------------------------------------------------------
// Helpers
//----------------------------------------------------------------------------------------
func colorizeImageWhite(img image.Image) image.Image {
  bounds := img.Bounds()
  out := image.NewNRGBA(bounds)
  for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
    for x := bounds.Min.X; x < bounds.Max.X; x++ {
      _, _, _, a := img.At(x, y).RGBA()
      alpha8 := uint8(a >> 8)
      out.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: alpha8})
    }
  }
  return out
}

func computeInitials(first, last string) string {
  fInit := "?"
  if len(first) > 0 {
    fInit = strings.ToUpper(first[:1])
  }
  lInit := "?"
  if len(last) > 0 {
    lInit = strings.ToUpper(last[:1])
  }
  return fInit + lInit
}

func findFiles(dir string) ([]string, error) {
  entries, err := os.ReadDir(dir)
  if err != nil {
    return nil, err
  }
  var paths []string
  for _, e := range entries {
    if e.IsDir() {
      continue
    }
    name := e.Name()
    if strings.HasSuffix(strings.ToLower(name), ".png") {
      fullPath := filepath.Join(dir, name)
      paths = append(paths, fullPath)
    }
  }
  return paths, nil
}

func loadColorsFromFile(jsonPath string) ([]color.NRGBA, error) {
  data, err := ioutil.ReadFile(jsonPath)
  if err != nil {
    return nil, fmt.Errorf("read file error: %w", err)
  }
  var colors []color.NRGBA
  if err := json.Unmarshal(data, &colors); err != nil {
    return nil, fmt.Errorf("json unmarshal error: %w", err)
  }
  return colors, nil
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
  fontBytes, err := ioutil.ReadFile(fontPath)
  if err != nil {
    return nil, fmt.Errorf("failed to read font file: %w", err)
  }
  parsedFont, err := truetype.Parse(fontBytes)
  if err != nil {
    return nil, fmt.Errorf("failed to parse TTF: %w", err)
  }
  face := truetype.NewFace(parsedFont, &truetype.Options{
    Size:     size,
    DPI:      72,
    Hinting:  font.HintingNone,
  })
  return face, nil
}
