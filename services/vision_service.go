package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type VisionService struct {
	client *rekognition.Client
}

func NewVisionService() (*VisionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &VisionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// Rekognition tags everything in frame; these generic labels carry no food
// information and get skipped when picking the lookup query.
var genericLabels = map[string]bool{
	"Food": true, "Meal": true, "Dish": true, "Plate": true,
	"Cutlery": true, "Table": true, "Person": true,
}

// DetectFoodLabels returns the Rekognition labels for a base64 data-URI
// photo, most confident first, with non-food scenery labels filtered out.
func (v *VisionService) DetectFoodLabels(dataURI string) ([]string, error) {
	parts := strings.SplitN(dataURI, ",", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:image") {
		return nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, err
	}

	out, err := v.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(70),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		name := aws.ToString(l.Name)
		if genericLabels[name] {
			continue
		}
		labels = append(labels, name)
	}
	if len(labels) == 0 {
		return nil, errors.New("no food detected in photo")
	}
	return labels, nil
}
