package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/sdeoras/servable/proto"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
)

func main() {
	t := time.Now()
	host := flag.String("host", "0.0.0.0:7001", "host")
	flag.Parse()

	if !strings.Contains(*host, ":") {
		logrus.Fatal("--host needs a port number")
	}

	logrus.Info("dialing grpc: ", *host)
	ctx := context.Background()
	conn, err := grpc.Dial(*host, grpc.WithInsecure())
	if err != nil {
		logrus.Fatal(err)
	}
	defer conn.Close()
	client := proto.NewPredictClient(conn)
	logrus.Info("connected to grpc: ", *host)

	info, err := client.Info(ctx, &proto.Empty{})
	if err != nil {
		logrus.Fatal(err)
	}

	fmt.Println("backend:        ", info.Backend)
	fmt.Println("policy:         ", info.Policy)
	fmt.Println("signature key:  ", info.SignatureKey)
	fmt.Println("num classes:    ", info.NumClasses)
	fmt.Println("bundle version: ", info.BundleVersion)

	logrus.Info("all done: ", time.Since(t))
}
