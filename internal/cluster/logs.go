package cluster

import (
	"context"
	"fmt"
	"io"
	"sort"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// maxLogBytes caps a single log read so a chatty container cannot flood the
// terminal.
const maxLogBytes = 64 * 1024

// DeploymentLogs returns the tail of the logs of one pod belonging to the
// named deployment. When several pods match, the newest is used.
func (c *Client) DeploymentLogs(ctx context.Context, namespace, name string, tailLines int64) (string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	dep, err := c.clientset.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return "", fmt.Errorf("get deployment %s/%s: %w", namespace, name, err)
	}

	selector := metav1.FormatLabelSelector(dep.Spec.Selector)
	pods, err := c.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{
		LabelSelector: selector,
	})
	if err != nil {
		return "", fmt.Errorf("list pods for deployment %s/%s: %w", namespace, name, err)
	}
	if len(pods.Items) == 0 {
		return "", fmt.Errorf("deployment %s/%s has no pods", namespace, name)
	}

	pod := newestPod(pods.Items)

	opts := &corev1.PodLogOptions{}
	if tailLines > 0 {
		opts.TailLines = &tailLines
	}

	stream, err := c.clientset.CoreV1().Pods(namespace).GetLogs(pod.Name, opts).Stream(ctx)
	if err != nil {
		return "", fmt.Errorf("stream logs for pod %s: %w", pod.Name, err)
	}
	defer stream.Close()

	data, err := io.ReadAll(io.LimitReader(stream, maxLogBytes+1))
	if err != nil {
		return "", fmt.Errorf("read logs for pod %s: %w", pod.Name, err)
	}

	if len(data) > maxLogBytes {
		return string(data[:maxLogBytes]) + "\n... [truncated]", nil
	}
	return string(data), nil
}

func newestPod(pods []corev1.Pod) *corev1.Pod {
	sort.Slice(pods, func(i, j int) bool {
		return pods[i].CreationTimestamp.After(pods[j].CreationTimestamp.Time)
	})
	return &pods[0]
}
